// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bootstrap opens the infrastructure selected by configuration.

Both the API server and the operator CLI start here, so a given environment
always reaches the same store, schema and Redis instance.
*/
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/config"
	"github.com/taibuivan/sanaa/internal/platform/constants"
	"github.com/taibuivan/sanaa/internal/platform/migration"
	pgstore "github.com/taibuivan/sanaa/internal/platform/postgres"
	redisstore "github.com/taibuivan/sanaa/internal/platform/redis"
)

// Store is a Directory Store that can also be seeded.
type Store interface {
	directory.Repository
	directory.Seeder
}

// Storage is the opened directory backend.
type Storage struct {
	Store Store

	// Ping is nil for the in-memory driver.
	Ping func(ctx context.Context) error

	close func()
}

// Close releases the backend's connections.
func (storage *Storage) Close() {
	if storage.close != nil {
		storage.close()
	}
}

// NewLogger returns the JSON logger every command uses, tagged with the app name.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// OpenStorage connects the configured driver. For PostgreSQL it also applies
// pending migrations when migrate is true.
func OpenStorage(ctx context.Context, cfg *config.Config, migrate bool, log *slog.Logger) (*Storage, error) {
	if !cfg.UsesPostgres() {
		log.Info("storage_opened", slog.String("driver", config.DriverMemory))
		return &Storage{Store: directory.NewMemoryStore()}, nil
	}

	if migrate {
		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
			return nil, fmt.Errorf("bootstrap: run migrations: %w", err)
		}
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: connect to postgres: %w", err)
	}

	log.Info("storage_opened", slog.String("driver", config.DriverPostgres))
	return &Storage{
		Store: directory.NewPostgresStore(pool),
		Ping: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		close: pool.Close,
	}, nil
}

// OpenRedis connects to Redis when configured. It returns (nil, nil) when
// REDIS_URL is empty.
func OpenRedis(ctx context.Context, cfg *config.Config, log *slog.Logger) (*goredis.Client, error) {
	if !cfg.UsesRedis() {
		log.Info("redis_disabled")
		return nil, nil
	}

	client, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: connect to redis: %w", err)
	}
	return client, nil
}
