// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It uses 'caarlos0/env' to map OS environment variables into a strongly-typed
struct, then checks the rules that span several variables.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

The default configuration needs no environment at all: the directory runs
from the seeded in-memory store on port 5000.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Storage Drivers

const (
	// DriverMemory keeps every collection in process memory; data is re-seeded on restart.
	DriverMemory = "memory"

	// DriverPostgres persists collections in PostgreSQL.
	DriverPostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the Sanaa API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"5000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Directory storage
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	SeedOnStart   bool   `env:"SEED_ON_START"  envDefault:"true"`

	// Relational Database (PostgreSQL), required when StorageDriver is "postgres".
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Empty disables the contact cooldown.
	RedisURL string `env:"REDIS_URL"`

	// ContactCooldown is the minimum gap between two inquiries from one sender to one artisan.
	ContactCooldown time.Duration `env:"CONTACT_COOLDOWN" envDefault:"1m"`

	// Cross-Origin Resource Sharing: origins ending with this suffix are allowed outside development.
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"sanaa.dz"`

	// Observability
	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks the rules that env struct tags cannot express.
func (c *Config) validate() error {
	switch c.StorageDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required when STORAGE_DRIVER=%s", DriverPostgres)
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q (want %q or %q)", c.StorageDriver, DriverMemory, DriverPostgres)
	}

	if c.ContactCooldown < 0 {
		return fmt.Errorf("config: CONTACT_COOLDOWN must not be negative")
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// UsesPostgres reports whether the directory is backed by PostgreSQL.
func (c *Config) UsesPostgres() bool {
	return c.StorageDriver == DriverPostgres
}

// UsesRedis reports whether a Redis URL was configured.
func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}
