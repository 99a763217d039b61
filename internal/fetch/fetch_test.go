package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham050802/Auto-Grading-Tool/internal/fetch"
)

func TestFetchOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("Student,Marks\nalice,85\n"))
	}))
	defer srv.Close()

	l := fetch.New(5*time.Second, 1<<20)
	data, name, err := l.Fetch(context.Background(), srv.URL+"/marks.csv")
	require.NoError(t, err)
	assert.Equal(t, "marks.csv", name)
	assert.Contains(t, string(data), "alice")
}

func TestFetchRejectsHTMLByContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("Student,Marks\n"))
	}))
	defer srv.Close()

	l := fetch.New(5*time.Second, 1<<20)
	_, _, err := l.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, fetch.ErrHTMLPage)
}

func TestFetchRejectsHTMLByBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte("  <!DOCTYPE html><html><body>sign in</body></html>"))
	}))
	defer srv.Close()

	l := fetch.New(5*time.Second, 1<<20)
	_, _, err := l.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, fetch.ErrHTMLPage)
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 2048)))
	}))
	defer srv.Close()

	l := fetch.New(5*time.Second, 1024)
	_, _, err := l.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, fetch.ErrTooLarge)
}

func TestFetchRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	l := fetch.New(5*time.Second, 1<<20)
	_, _, err := l.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFetchRejectsBadURL(t *testing.T) {
	l := fetch.New(5*time.Second, 1<<20)
	_, _, err := l.Fetch(context.Background(), "ftp://example.com/data.csv")
	assert.Error(t, err)
}

func TestRewriteCloudURL(t *testing.T) {
	cases := map[string]string{
		"https://drive.google.com/file/d/FILE123/view?usp=sharing": "https://drive.google.com/uc?export=download&id=FILE123",
		"https://github.com/acme/marks/blob/main/data/marks.csv":   "https://raw.githubusercontent.com/acme/marks/main/data/marks.csv",
		"https://example.com/data.csv":                             "https://example.com/data.csv",
	}
	for in, want := range cases {
		assert.Equal(t, want, fetch.RewriteCloudURL(in), in)
	}

	// Dropbox keeps the URL but forces dl=1.
	got := fetch.RewriteCloudURL("https://www.dropbox.com/s/abc/marks.csv?dl=0")
	assert.Contains(t, got, "dl=1")
	assert.Contains(t, got, "dropbox.com")
}
