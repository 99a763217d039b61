package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, int64(50<<20), cfg.FetchMaxBytes)
	assert.Equal(t, 30, cfg.FetchTimeoutSec)
	assert.Equal(t, []float64{90, 80, 70, 60, 50, 40, 30, 20}, cfg.DefaultBoundaries)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("FETCH_MAX_MB", "10")
	t.Setenv("DEFAULT_BOUNDARIES", "91,81,71,61,51,41,31,21")

	cfg := FromEnv()
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, int64(10<<20), cfg.FetchMaxBytes)
	assert.Equal(t, 91.0, cfg.DefaultBoundaries[0])
}

func TestMalformedBoundariesFallBack(t *testing.T) {
	t.Setenv("DEFAULT_BOUNDARIES", "90,80")
	assert.Equal(t, []float64{90, 80, 70, 60, 50, 40, 30, 20}, FromEnv().DefaultBoundaries)

	t.Setenv("DEFAULT_BOUNDARIES", "a,b,c,d,e,f,g,h")
	assert.Equal(t, []float64{90, 80, 70, 60, 50, 40, 30, 20}, FromEnv().DefaultBoundaries)
}

func TestCSVOr(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " https://a.example , https://b.example ,")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, FromEnv().CORSOrigins)
}
