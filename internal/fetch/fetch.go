// Package fetch retrieves remote data files for the dashboard. Downloads
// are size-capped and rejected outright when the server hands back a web
// page instead of data.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

var (
	// ErrTooLarge means the payload exceeded the byte cap. Oversized
	// downloads are rejected, never truncated.
	ErrTooLarge = errors.New("payload exceeds size limit")
	// ErrHTMLPage means the response looks like a web page, typically a
	// share/login page where a share link was pasted instead of a direct
	// download link.
	ErrHTMLPage = errors.New("received a web page instead of a data file")
)

const DefaultMaxBytes = 50 << 20

// Loader fetches data files over HTTP with a fixed timeout and byte cap.
type Loader struct {
	client   *http.Client
	maxBytes int64
}

func New(timeout time.Duration, maxBytes int64) *Loader {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Loader{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// Fetch downloads rawURL after cloud-link rewriting and returns the payload
// plus a file name guessed from the URL path (for format detection).
func (l *Loader) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	target := RewriteCloudURL(strings.TrimSpace(rawURL))
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, "", fmt.Errorf("invalid url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", u.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("fetch %s: unexpected status %s", u.Host, resp.Status)
	}
	if resp.ContentLength > l.maxBytes {
		return nil, "", fmt.Errorf("%w: %d bytes declared, limit %d", ErrTooLarge, resp.ContentLength, l.maxBytes)
	}

	// Read one byte past the cap so an oversized body is detected even
	// without a Content-Length header.
	data, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, "", fmt.Errorf("%w: limit %d bytes", ErrTooLarge, l.maxBytes)
	}

	ctype := resp.Header.Get("Content-Type")
	if looksLikeHTML(ctype, data) {
		return nil, "", ErrHTMLPage
	}
	return data, fileNameFrom(u), nil
}

// RewriteCloudURL turns common share links into direct-download links:
// Google Drive file pages, Dropbox ?dl=0 links and GitHub blob pages.
// Anything unrecognized passes through untouched.
func RewriteCloudURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	switch {
	case strings.HasSuffix(u.Host, "drive.google.com"):
		// /file/d/<id>/view → uc?export=download&id=<id>
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) >= 3 && parts[0] == "file" && parts[1] == "d" {
			return "https://drive.google.com/uc?export=download&id=" + parts[2]
		}
	case strings.HasSuffix(u.Host, "dropbox.com"):
		q := u.Query()
		q.Set("dl", "1")
		u.RawQuery = q.Encode()
		return u.String()
	case u.Host == "github.com":
		// /owner/repo/blob/ref/path → raw.githubusercontent.com/owner/repo/ref/path
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) >= 5 && parts[2] == "blob" {
			return "https://raw.githubusercontent.com/" +
				strings.Join(parts[:2], "/") + "/" + strings.Join(parts[3:], "/")
		}
	}
	return raw
}

func looksLikeHTML(contentType string, body []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		return true
	}
	head := strings.ToLower(string(bytes.TrimSpace(body[:min(len(body), 256)])))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

func fileNameFrom(u *url.URL) string {
	name := path.Base(u.Path)
	if name == "/" || name == "." {
		return ""
	}
	return name
}
