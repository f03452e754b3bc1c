package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration, loaded from environment
// variables with sensible defaults for local development.
type Config struct {
	Port   string `env:"PORT" envDefault:"4422"`
	DBPath string `env:"DB_PATH" envDefault:"./newsportal.db"`

	// Bootstrap admin credential pair. An intentionally simplified
	// mechanism: it bypasses the registered-user directory entirely.
	AdminUser string `env:"ADMIN_USER" envDefault:"SMULIK8181"`
	AdminPass string `env:"ADMIN_PASS" envDefault:"8181"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
