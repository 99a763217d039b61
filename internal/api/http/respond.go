package http

import (
	"encoding/json"
	"net/http"

	"github.com/shubham050802/Auto-Grading-Tool/internal/auth"
	"github.com/shubham050802/Auto-Grading-Tool/internal/session"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// sessionFrom resolves the request's session from its bearer token. A nil
// return means the response has already been written.
func sessionFrom(w http.ResponseWriter, r *http.Request, reg *session.Registry) *session.Session {
	id := auth.SessionFromContext(r.Context())
	if id == "" {
		writeError(w, http.StatusUnauthorized, "no session")
		return nil
	}
	s, ok := reg.Get(id)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unknown session")
		return nil
	}
	return s
}
