package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// ErrMissingSessionKeys is returned when the session secrets are not
// configured. The server refuses to start without them rather than falling
// back to a well-known default.
var ErrMissingSessionKeys = errors.New("config: USER_DATA_ENCRYPT_KEY and TOKEN_ENCRYPT_KEY must be set")

// Config holds everything the server needs at startup. Secrets are injected
// into the session codec and never read from the environment afterwards.
type Config struct {
	Addr              string
	DatabaseURL       string
	SessionPayloadKey string
	SessionSigningKey string
	SessionTTL        time.Duration
}

// Load reads configuration from the environment. Call godotenv.Load first if
// a .env file should be honored.
func Load() (Config, error) {
	cfg := Config{
		Addr:              "0.0.0.0:" + getEnv("HTTP_PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=devdir port=5432 sslmode=disable"),
		SessionPayloadKey: os.Getenv("USER_DATA_ENCRYPT_KEY"),
		SessionSigningKey: os.Getenv("TOKEN_ENCRYPT_KEY"),
		SessionTTL:        time.Duration(getEnvInt("SESSION_TTL_HOURS", 24*30)) * time.Hour,
	}

	if cfg.SessionPayloadKey == "" || cfg.SessionSigningKey == "" {
		return Config{}, ErrMissingSessionKeys
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
