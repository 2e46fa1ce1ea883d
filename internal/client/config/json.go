package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/littlerefugees/refugio-cli/internal/flagx"
	"github.com/littlerefugees/refugio-cli/internal/timex"
)

// jsonConfig is the DTO for the JSON config file. timex.Duration lets the
// timeout be written either as "30s" or as integer nanoseconds.
type jsonConfig struct {
	ServerURL      string         `json:"server_url"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	RateLimitRPS   float64        `json:"rate_limit_rps"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flag. Without the flag nothing is loaded; with it, read or
// decode failures are reported to the caller.
func parseJSON(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RateLimitRPS > 0 {
		cfg.RateLimitRPS = jc.RateLimitRPS
	}
	return nil
}
