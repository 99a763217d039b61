// Package auth issues and checks the HMAC-signed bearer tokens that tie a
// request to a dashboard session, plus an optional admin login guarded by a
// bcrypt hash from config.
package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Service struct{ hmac []byte }

func NewService(secret string) *Service { return &Service{hmac: []byte(secret)} }

type Claims struct {
	SessionID string `json:"sid,omitempty"`
	Admin     bool   `json:"adm,omitempty"`
	jwt.RegisteredClaims
}

func (a *Service) IssueSessionToken(sessionID string) (string, error) {
	return a.issue(Claims{SessionID: sessionID})
}

func (a *Service) IssueAdminToken(user string) (string, error) {
	return a.issue(Claims{Admin: true, RegisteredClaims: jwt.RegisteredClaims{Subject: user}})
}

func (a *Service) issue(claims Claims) (string, error) {
	now := time.Now()
	claims.Issuer = "gradeboard"
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(12 * time.Hour))
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return t.SignedString(a.hmac)
}

func (a *Service) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.hmac, nil
	})
	if err != nil || !token.Valid {
		return nil, err
	}
	c, _ := token.Claims.(*Claims)
	return c, nil
}

// Middleware rejects requests without a valid bearer token and stores the
// session ID (and admin flag) in the request context.
func Middleware(a *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "missing bearer", http.StatusUnauthorized)
				return
			}
			c, err := a.Parse(strings.TrimPrefix(h, "Bearer "))
			if err != nil || c == nil {
				http.Error(w, "bad token", http.StatusUnauthorized)
				return
			}
			ctx := WithSession(r.Context(), c.SessionID)
			if c.Admin {
				ctx = WithAdmin(ctx)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoginHandler checks admin credentials against the configured bcrypt hash
// and hands back an admin token. Disabled (404) when no hash is configured.
//
// POST /auth/login { "username": "...", "password": "..." }
func LoginHandler(a *Service, adminUser, adminPassHash string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if adminPassHash == "" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Username != adminUser ||
			bcrypt.CompareHashAndPassword([]byte(adminPassHash), []byte(req.Password)) != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		tok, err := a.IssueAdminToken(req.Username)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": tok})
	}
}
