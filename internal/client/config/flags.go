package config

import (
	"flag"
	"os"
	"time"

	"github.com/littlerefugees/refugio-cli/internal/flagx"
)

// parseFlags overlays Config with command-line flags:
//
//	-a string    base URL of the backend server
//	-d string    credentials database file
//	-t int       request timeout in seconds
//	-r float     outgoing request rate limit (requests per second)
//
// Arguments are filtered to just these flags first, so flags owned by other
// packages (like -c for the config file) do not interfere.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the backend server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "credentials database file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.Float64Var(&cfg.RateLimitRPS, "r", cfg.RateLimitRPS, "outgoing request rate limit (rps, 0 = off)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
