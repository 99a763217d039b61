package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shubham050802/Auto-Grading-Tool/internal/auth"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := auth.NewService("secret")
	tok, err := svc.IssueSessionToken("sess-1")
	require.NoError(t, err)

	claims, err := svc.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.False(t, claims.Admin)
}

func TestParseRejectsForeignToken(t *testing.T) {
	tok, err := auth.NewService("one").IssueSessionToken("sess-1")
	require.NoError(t, err)

	_, err = auth.NewService("two").Parse(tok)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	svc := auth.NewService("secret")
	var gotSession string
	h := auth.Middleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = auth.SessionFromContext(r.Context())
	}))

	// No token.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token.
	tok, _ := svc.IssueSessionToken("sess-9")
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sess-9", gotSession)
}

func TestLoginHandler(t *testing.T) {
	svc := auth.NewService("secret")
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	h := auth.LoginHandler(svc, "admin", string(hash))

	post := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(body)))
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, post(`{"username":"admin","password":"wrong"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, post(`{"username":"other","password":"hunter2"}`).Code)

	rec := post(`{"username":"admin","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	h := auth.LoginHandler(auth.NewService("secret"), "admin", "")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
