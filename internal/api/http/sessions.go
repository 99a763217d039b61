package http

import (
	"net/http"

	"github.com/shubham050802/Auto-Grading-Tool/internal/auth"
	"github.com/shubham050802/Auto-Grading-Tool/internal/session"
)

// POST /sessions — open a dashboard session and hand back its bearer token.
func CreateSessionHandler(reg *session.Registry, authSvc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := reg.Create()
		tok, err := authSvc.IssueSessionToken(s.ID)
		if err != nil {
			reg.Delete(s.ID)
			writeError(w, http.StatusInternalServerError, "issue token")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{
			"session_id":   s.ID,
			"access_token": tok,
		})
	}
}
