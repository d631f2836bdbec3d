package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries the settings the core needs. Values come from the
// environment with a .env file as fallback.
type Config struct {
	// CreatorEmail is the one address ever assigned the Creator role.
	CreatorEmail string
	// StorePath is the on-device SQLite file backing the persistent store.
	StorePath string
	// SessionSecret signs the active-session token.
	SessionSecret string
	LogLevel      string
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		CreatorEmail:  getEnv("GUARDIAN_CREATOR_EMAIL", "creator@guardian.protocol"),
		StorePath:     getEnv("GUARDIAN_STORE_PATH", "guardian.db"),
		SessionSecret: getEnv("GUARDIAN_SESSION_SECRET", "guardian-dev-secret"),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
