// Package config loads runtime configuration from the process environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds everything the process reads from its environment. The
// database URL is deliberately optional: without it the server still starts
// and reports degraded status on the diagnostic endpoints.
type Config struct {
	Env                string   `koanf:"app_env"`
	Port               string   `koanf:"port"`
	DatabaseURL        string   `koanf:"database_url"`
	DatabaseName       string   `koanf:"database_name"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
	LogLevel           string   `koanf:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
}

// Load reads flat environment variables (PORT, DATABASE_URL, ...) into a
// Config, applies defaults for everything left unset and validates the
// result. Comma-separated values such as CORS_ALLOWED_ORIGINS unmarshal
// into slices.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Env == "" {
		c.Env = "development"
	}
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.DatabaseName == "" {
		c.DatabaseName = "portfolio"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c.CORSAllowedOrigins = origins
}

// IsProduction reports whether the process runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
