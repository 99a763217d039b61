package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr  string
	PublicURL string

	DBDriver string
	DBDSN    string

	BlobBasePath string

	// URL loader limits.
	FetchTimeoutSec int
	FetchMaxBytes   int64

	AuthHMACSecret string
	AdminUser      string
	AdminPassHash  string // bcrypt

	CORSOrigins []string

	// Default grade thresholds, A through E, highest first.
	DefaultBoundaries []float64
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:  addr,
		PublicURL: os.Getenv("PUBLIC_URL"),

		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		BlobBasePath: envOr("BLOB_BASE_PATH", "./data"),

		FetchTimeoutSec: envInt("FETCH_TIMEOUT_SEC", 30),
		FetchMaxBytes:   int64(envInt("FETCH_MAX_MB", 50)) << 20,

		AuthHMACSecret: envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		AdminUser:      envOr("ADMIN_USER", "admin"),
		AdminPassHash:  envOr("ADMIN_PASS_HASH", ""),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),

		DefaultBoundaries: floatsOr("DEFAULT_BOUNDARIES", "90,80,70,60,50,40,30,20"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// floatsOr parses a comma list of eight thresholds, highest first.
// Malformed input falls back to the default string.
func floatsOr(k, def string) []float64 {
	parse := func(s string) ([]float64, bool) {
		parts := strings.Split(s, ",")
		if len(parts) != 8 {
			return nil, false
		}
		out := make([]float64, 0, 8)
		for _, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	}
	if v := os.Getenv(k); v != "" {
		if out, ok := parse(v); ok {
			return out
		}
	}
	out, _ := parse(def)
	return out
}
