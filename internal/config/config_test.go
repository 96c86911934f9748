package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfigEnv points HOME at an empty dir so a developer's own
// ~/.snapgram.toml cannot leak into the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DB_URL", "")
	t.Setenv("REDIS_URL", "")
}

func TestLoadEnvOnly(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("SNAPGRAM_DATABASE_URL", "postgres://localhost:5432/snapgram")
	t.Setenv("SNAPGRAM_AUTH_SECRET", "sekrit")

	cfg, err := Load("")
	require.NoError(t, err, "no config file present, env vars alone must be enough")
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "postgres://localhost:5432/snapgram", cfg.Database.URL)
	assert.Equal(t, "sekrit", cfg.Auth.Secret)
}

func TestLoadDefaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "snapgram", cfg.Auth.Issuer)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidity())
	assert.Equal(t, time.Minute, cfg.QueryTTL())
	assert.Equal(t, 10, cfg.Queue.Concurrency)
}

func TestLoadExplicitFile(t *testing.T) {
	isolateConfigEnv(t)

	path := filepath.Join(t.TempDir(), "snapgram.toml")
	body := "[http]\naddr = \":9090\"\n\n[database]\nurl = \"postgres://db/snapgram\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "postgres://db/snapgram", cfg.Database.URL)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	isolateConfigEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err, "an explicitly named file must exist")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolateConfigEnv(t)

	path := filepath.Join(t.TempDir(), "snapgram.toml")
	require.NoError(t, os.WriteFile(path, []byte("[http]\naddr = \":9090\"\n"), 0o600))
	t.Setenv("SNAPGRAM_HTTP_ADDR", ":7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
}

func TestLoadLegacyEnvFallback(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("DB_URL", "postgres://legacy/db")
	t.Setenv("REDIS_URL", "redis://legacy:6379")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://legacy/db", cfg.Database.URL)
	assert.Equal(t, "redis://legacy:6379", cfg.Redis.URL)
}

func TestValidateRequiredFields(t *testing.T) {
	var cfg Config
	assert.Error(t, Validate(&cfg))

	cfg.Database.URL = "postgres://db/snapgram"
	assert.Error(t, Validate(&cfg))

	cfg.Auth.Secret = "sekrit"
	assert.NoError(t, Validate(&cfg))
}
