package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the full application configuration.
type Config struct {
	HTTP struct {
		Addr string `koanf:"addr"`
	} `koanf:"http"`

	Database struct {
		URL string `koanf:"url"`
	} `koanf:"database"`

	Redis struct {
		URL string `koanf:"url"`
	} `koanf:"redis"`

	Auth struct {
		Secret          string `koanf:"secret"`
		Issuer          string `koanf:"issuer"`
		ValidityMinutes int    `koanf:"validity_minutes"`
	} `koanf:"auth"`

	Cache struct {
		QueryTTLSeconds int `koanf:"query_ttl_seconds"`
	} `koanf:"cache"`

	Queue struct {
		Concurrency int `koanf:"concurrency"`
	} `koanf:"queue"`
}

// TokenValidity returns the configured JWT lifetime.
func (c *Config) TokenValidity() time.Duration {
	return time.Duration(c.Auth.ValidityMinutes) * time.Minute
}

// QueryTTL returns the TTL applied to cached query results.
func (c *Config) QueryTTL() time.Duration {
	return time.Duration(c.Cache.QueryTTLSeconds) * time.Second
}

// Load reads configuration from defaults, a TOML file and SNAPGRAM_-prefixed
// environment variables, in that order of precedence. An explicit configPath
// must exist; with an empty path the default locations are probed and skipped
// when absent, so env-only setups work without any file.
func Load(configPath string) (*Config, error) {
	var k = koanf.New(".")

	// Defaults
	k.Load(confmap.Provider(map[string]interface{}{
		"http.addr":               ":8080",
		"auth.issuer":             "snapgram",
		"auth.validity_minutes":   60 * 24,
		"cache.query_ttl_seconds": 60,
		"queue.concurrency":       10,
	}, "."), nil)

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", configPath, err)
		}
	} else {
		defaultPaths := []string{"./snapgram.toml", "$HOME/.snapgram.toml"}
		for _, path := range defaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	// Environment variables: SNAPGRAM_DATABASE_URL -> database.url
	k.Load(env.Provider("SNAPGRAM_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "SNAPGRAM_")), "_", ".", 1)
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	// Legacy env vars used by local tooling keep working
	if cfg.Database.URL == "" {
		cfg.Database.URL = strings.TrimSpace(os.Getenv("DB_URL"))
	}
	if cfg.Redis.URL == "" {
		cfg.Redis.URL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	}

	return &cfg, nil
}

// Validate checks that required settings are present.
func Validate(cfg *Config) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("config: database url is required")
	}
	if cfg.Auth.Secret == "" {
		return fmt.Errorf("config: auth secret is required")
	}
	return nil
}
