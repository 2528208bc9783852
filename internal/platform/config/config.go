// Copyright (c) 2026 Swahilipot Hub. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (storage, API client) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Storage backend selectors accepted in STORAGE_BACKEND.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// # Configuration Schema

// Config holds all runtime configuration for the booking client and the
// development stub backend.
type Config struct {

	// Backend REST API consumed by the client.
	BackendURL string `env:"BACKEND_URL" envDefault:"http://localhost:3000"`

	// Local key-value state backend: memory, sqlite or redis.
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"sqlite"`

	// StatePath is the sqlite database file holding local state.
	StatePath string `env:"STATE_PATH" envDefault:"hubclient.db"`

	// RedisURL is required only when STORAGE_BACKEND=redis.
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`

	// ColorScheme is the host environment's color-scheme signal, consulted
	// only when no theme preference has been persisted yet.
	ColorScheme string `env:"COLOR_SCHEME" envDefault:"light"`

	// Stub backend settings (cmd/stubserver only).
	StubPort string `env:"STUB_PORT" envDefault:"3000"`

	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Reject unknown storage selectors early so a typo does not silently
	// fall through to an unintended medium.
	switch cfg.StorageBackend {
	case StorageMemory, StorageSQLite, StorageRedis:
	default:
		return nil, fmt.Errorf("config: unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}

// IsDevelopment reports whether the client is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the client is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
