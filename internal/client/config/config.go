package config

import "time"

// Config holds the runtime settings of the CLI.
//
// Fields:
//   - ServerURL: base URL of the backend API.
//   - DatabasePath: sqlite file holding the persisted credentials.
//   - RequestTimeout: per-request HTTP timeout.
//   - RateLimitRPS: client-side cap on outgoing requests per second;
//     0 disables the limiter.
type Config struct {
	ServerURL      string
	DatabasePath   string
	RequestTimeout time.Duration
	RateLimitRPS   float64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "https://little-refugees-backend.onrender.com"
	c.DatabasePath = "refugio.db"
	c.RequestTimeout = 30 * time.Second
	c.RateLimitRPS = 0
}

// LoadConfig constructs a Config by layering sources, later ones overriding
// earlier ones: defaults, then environment (including a .env file when
// present), then a JSON file given via -c/-config, then command-line flags.
// A config file that was asked for but cannot be read, or a malformed flag,
// is an error, not something to silently skip.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
