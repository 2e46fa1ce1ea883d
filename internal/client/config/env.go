package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first, without overriding variables that
// are already exported.
//
// Recognized variables:
//
//	REFUGIO_SERVER_URL       base URL of the backend
//	REFUGIO_DATABASE_PATH    credentials database file
//	REFUGIO_REQUEST_TIMEOUT  duration, e.g. "30s"
//	REFUGIO_RATE_LIMIT_RPS   float, 0 disables the limiter
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("REFUGIO_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("REFUGIO_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("REFUGIO_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("REFUGIO_RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
}
