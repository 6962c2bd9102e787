// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmfalves/anidex/internal/platform/constants"
	"github.com/dmfalves/anidex/internal/platform/postgres"
	"github.com/dmfalves/anidex/internal/platform/redis"
	"github.com/dmfalves/anidex/internal/platform/respond"
)

// HealthHandler serves the orchestrator probes.
//
// Liveness answers whether the process is up; readiness additionally pings
// the Postgres pool and Redis so traffic is only routed once both respond.
type HealthHandler struct {
	db    *pgxpool.Pool
	cache *goredis.Client
}

// NewHealthHandler constructs a [HealthHandler] with its backend dependencies.
func NewHealthHandler(db *pgxpool.Pool, cache *goredis.Client) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Liveness reports that the process is running. It never touches backends.
func (handler *HealthHandler) Liveness(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusOK, map[string]string{
		constants.FieldStatus: "ok",
		"version":             constants.AppVersion,
	})
}

// Readiness pings every backend and reports per-dependency status.
// Any failing check yields a 503 so load balancers stop routing here.
func (handler *HealthHandler) Readiness(writer http.ResponseWriter, request *http.Request) {
	checks := map[string]string{}
	healthy := true

	if err := postgres.Ping(request.Context(), handler.db); err != nil {
		checks["postgres"] = err.Error()
		healthy = false
	} else {
		checks["postgres"] = "ok"
	}

	if err := redis.Ping(request.Context(), handler.cache); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	} else {
		checks["redis"] = "ok"
	}

	status := http.StatusOK
	statusText := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		statusText = "degraded"
	}

	respond.JSON(writer, status, map[string]any{
		constants.FieldStatus: statusText,
		constants.FieldChecks: checks,
	})
}
