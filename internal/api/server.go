// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

/*
Package api is the composition root of the HTTP layer.

It assembles the middleware chain, mounts the domain routers under /api/v1,
and owns the http.Server lifecycle (start, graceful shutdown).
*/
package api

import (
	stdctx "context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmfalves/anidex/internal/platform/config"
	"github.com/dmfalves/anidex/internal/platform/constants"
	"github.com/dmfalves/anidex/internal/platform/middleware"
)

// Router is what every domain handler exposes to the composition root.
type Router interface {
	Routes() chi.Router
}

// Handlers is the registry of domain handlers mounted by the server.
type Handlers struct {
	Health *HealthHandler
	Auth   Router
	Anime  Router
	Users  Router
	Audit  Router
}

// Server wraps the chi router and the underlying http.Server.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds the full HTTP stack: middleware chain, health probes,
// and the /api/v1 domain routers.
//
// # Middleware order
//
// RequestID runs first so every later stage can correlate its logs;
// Authenticate runs after logging so rejected tokens still produce an
// access log line.
func NewServer(cfg *config.Config, verifier middleware.TokenVerifier, handlers Handlers, logger *slog.Logger, appContext stdctx.Context) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.RateLimit(appContext))
	router.Use(middleware.PanicRecovery(logger))
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Authenticate(verifier))

	// Probes live outside /api/v1 so orchestrators can hit stable paths.
	router.Get("/health", handlers.Health.Liveness)
	router.Get("/ready", handlers.Health.Readiness)

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Mount("/auth", handlers.Auth.Routes())
		v1.Mount("/animes", handlers.Anime.Routes())
		v1.Mount("/users", handlers.Users.Routes())
		v1.Mount("/logs", handlers.Audit.Routes())
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           http.TimeoutHandler(router, constants.GlobalRequestTimeout, `{"code":"TIMEOUT","error":"Request timed out"}`),
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
		logger: logger,
	}
}

// Start begins serving and blocks until the listener fails or is closed.
func (server *Server) Start() error {
	server.logger.Info("http server listening", slog.String("addr", server.httpServer.Addr))

	if err := server.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api: server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (server *Server) Shutdown(context stdctx.Context) error {
	server.logger.Info("http server shutting down")
	return server.httpServer.Shutdown(context)
}
