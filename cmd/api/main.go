// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Sanaa directory HTTP API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the directory store (memory, or PostgreSQL with migrations).
//  4. Seed the reference dataset into an empty store.
//  5. Connect to Redis when configured (contact cooldown).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/sanaa/internal/api"
	"github.com/taibuivan/sanaa/internal/bootstrap"
	"github.com/taibuivan/sanaa/internal/core/contact"
	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/config"
	"github.com/taibuivan/sanaa/internal/platform/constants"
	"github.com/taibuivan/sanaa/internal/platform/metrics"
	redisstore "github.com/taibuivan/sanaa/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := bootstrap.NewLogger(false)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = bootstrap.NewLogger(true)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Directory Store ────────────────────────────────────────────────
	storage, err := bootstrap.OpenStorage(startupCtx, cfg, true, log)
	must(log, err, "open storage")
	defer storage.Close()

	// ── 4. Seed ───────────────────────────────────────────────────────────
	if cfg.SeedOnStart {
		must(log, directory.Seed(startupCtx, storage.Store, log), "seed directory")
	}

	// ── 5. Redis ──────────────────────────────────────────────────────────
	rdb, err := bootstrap.OpenRedis(startupCtx, cfg, log)
	must(log, err, "connect to redis")

	var cooldown contact.Cooldown = contact.NoCooldown{}
	health := api.HealthDependencies{CheckDatabase: storage.Ping}

	if rdb != nil {
		defer func() {
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()
		cooldown = contact.NewRedisCooldown(rdb)
		health.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.NewCollector(constants.MetricsNamespace)
	}

	handlers := api.NewHandlers(api.Dependencies{
		Store:           storage.Store,
		Cooldown:        cooldown,
		ContactCooldown: cfg.ContactCooldown,
		Metrics:         collector,
		Health:          health,
	}, log)

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, collector, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// Only startup wiring uses it.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
