package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"refugio"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://little-refugees-backend.onrender.com", cfg.ServerURL)
	assert.Equal(t, "refugio.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Zero(t, cfg.RateLimitRPS)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("REFUGIO_SERVER_URL", "http://localhost:3000")
	t.Setenv("REFUGIO_REQUEST_TIMEOUT", "5s")
	t.Setenv("REFUGIO_RATE_LIMIT_RPS", "2.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestLoadConfig_JSONOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_url": "http://json:4000",
		"database_path": "/tmp/creds.db",
		"request_timeout": "12s"
	}`), 0o600))

	resetArgs(t, "-c", path)
	t.Setenv("REFUGIO_SERVER_URL", "http://env:3000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://json:4000", cfg.ServerURL)
	assert.Equal(t, "/tmp/creds.db", cfg.DatabasePath)
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsWinOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_url": "http://json:4000"}`), 0o600))

	resetArgs(t, "-c", path, "-a", "http://flag:5000", "-t", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://flag:5000", cfg.ServerURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_MissingJSONFileErrors(t *testing.T) {
	resetArgs(t, "-c", "/nonexistent/conf.json")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_MalformedJSONErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_url":`), 0o600))

	resetArgs(t, "-c", path)

	_, err := LoadConfig()
	require.Error(t, err)
}
