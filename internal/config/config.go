// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const defaultSQLitePath = "./data/whiskys.db"

// Config holds the whisky service configuration.
// Environment variables are parsed from the WHISKY_SERVICE_ prefix,
// e.g. WHISKY_SERVICE_HTTP_PORT, WHISKY_SERVICE_DB_DRIVER.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Store driver: sqlite (default) or postgres
	DBDriver string `envconfig:"DB_DRIVER" default:"sqlite"`

	// SQLite Configuration
	SQLitePath string `envconfig:"SQLITE_PATH" default:""`

	// Postgres Configuration
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Debug enables debug-level logging
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// ResolveDefaults validates the driver selection and fills derived values.
// It runs again after flag overrides in main.
func (c *Config) ResolveDefaults() error {
	if c.DBDriver == "" {
		c.DBDriver = "sqlite"
	}
	switch c.DBDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			c.SQLitePath = defaultSQLitePath
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("WHISKY_SERVICE_POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	return nil
}

// Load creates a Config by parsing environment variables and resolving
// derived defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("WHISKY_SERVICE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Str("sqlite_path", cfg.SQLitePath).
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Bool("debug", cfg.Debug).
		Msg("configuration loaded")

	return &cfg, nil
}

// GetHTTPAddr returns the HTTP server listen address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
