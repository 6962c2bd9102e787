// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

// Command api is the Anidex HTTP API server.
//
// It wires configuration, storage, and the domain services together and
// serves the REST API until interrupted.
package main

import (
	stdctx "context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmfalves/anidex/internal/anime"
	"github.com/dmfalves/anidex/internal/api"
	"github.com/dmfalves/anidex/internal/audit"
	"github.com/dmfalves/anidex/internal/auth"
	"github.com/dmfalves/anidex/internal/platform/config"
	"github.com/dmfalves/anidex/internal/platform/constants"
	"github.com/dmfalves/anidex/internal/platform/migration"
	"github.com/dmfalves/anidex/internal/platform/postgres"
	"github.com/dmfalves/anidex/internal/platform/redis"
	"github.com/dmfalves/anidex/internal/platform/sec"
	"github.com/dmfalves/anidex/internal/users"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// ── Configuration & Logging ──────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(logger)

	logger.Info("starting",
		slog.String("version", constants.AppVersion),
		slog.String("environment", cfg.Environment),
	)

	appContext, stop := signal.NotifyContext(stdctx.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Infrastructure ───────────────────────────────────────────────────
	pool, err := postgres.NewPool(appContext, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	cache, err := redis.NewClient(appContext, cfg.RedisURL, logger)
	if err != nil {
		return err
	}
	defer func() { _ = cache.Close() }()

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger); err != nil {
		return err
	}

	tokenService, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer)
	if err != nil {
		return err
	}

	// ── Domain Wiring ────────────────────────────────────────────────────
	auditService := audit.NewService(audit.NewPostgresRepository(pool), logger)

	animeService := anime.NewService(anime.NewPostgresRepository(pool), auditService, logger)

	userRepo := users.NewPostgresRepository(pool)
	userService := users.NewService(userRepo, auditService, logger)

	throttle := auth.NewLoginThrottle(cache, logger)
	authService := auth.NewService(userRepo, tokenService, throttle, auditService, logger)

	handlers := api.Handlers{
		Health: api.NewHealthHandler(pool, cache),
		Auth:   auth.NewHandler(authService),
		Anime:  anime.NewHandler(animeService),
		Users:  users.NewHandler(userService),
		Audit:  audit.NewHandler(auditService),
	}

	server := api.NewServer(cfg, tokenService, handlers, logger, appContext)

	// ── Lifecycle ────────────────────────────────────────────────────────
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-appContext.Done():
	}

	shutdownCtx, cancel := stdctx.WithTimeout(stdctx.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("stopped cleanly")
	return nil
}
