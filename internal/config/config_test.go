package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GENIE_API_URL", "")
	t.Setenv("GENIE_HTTP_TIMEOUT", "")

	cfg := Load()
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.NotEmpty(t, cfg.LogFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GENIE_API_URL", "https://api.example.com")
	t.Setenv("GENIE_HTTP_TIMEOUT", "30s")

	cfg := Load()
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("GENIE_HTTP_TIMEOUT", "soon")
	assert.Equal(t, 15*time.Second, Load().HTTPTimeout)

	t.Setenv("GENIE_HTTP_TIMEOUT", "-5s")
	assert.Equal(t, 15*time.Second, Load().HTTPTimeout)
}
