package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the client needs to reach its two external
// collaborators: the chat backend and the identity provider.
type Config struct {
	APIBaseURL  string
	AuthBaseURL string
	AuthAPIKey  string
	HTTPTimeout time.Duration
	LogFile     string
}

func Load() Config {
	// Missing .env just means the process environment is authoritative.
	_ = godotenv.Load()

	return Config{
		APIBaseURL:  getEnv("GENIE_API_URL", "http://localhost:8000"),
		AuthBaseURL: getEnv("GENIE_AUTH_URL", "https://identitytoolkit.googleapis.com/v1"),
		AuthAPIKey:  getEnv("GENIE_AUTH_KEY", ""),
		HTTPTimeout: getDuration("GENIE_HTTP_TIMEOUT", 15*time.Second),
		LogFile:     getEnv("GENIE_LOG_FILE", defaultLogFile()),
	}
}

func defaultLogFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "genie.log"
	}
	return filepath.Join(configDir, "genie", "genie.log")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
