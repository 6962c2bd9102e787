// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

/*
Package audit implements the append-only audit trail for mutating operations.

Every Create/Update/Delete/Disable/Enable on a catalog or user record produces
exactly one entry describing who-what-when at the moment of mutation.

# Durability Contract

Audit writes are best-effort, NOT transactional with the primary mutation.
A failed audit write is reported to the structured log and swallowed; it never
rolls back or fails the operation that triggered it.
*/
package audit

import (
	"context"
	"log/slog"
	"time"
)

// Recorder is the narrow interface mutating services depend on.
type Recorder interface {
	Record(context context.Context, message, level, action string)
}

// Service implements [Recorder] on top of a [Repository].
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs the audit service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record appends an audit entry with a server-side UTC timestamp.
//
// Fire-and-forget: storage failures are logged and never propagated.
func (service *Service) Record(context context.Context, message, level, action string) {
	entry := &Entry{
		Message:   message,
		Level:     level,
		Action:    action,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}

	if err := service.repo.Insert(context, entry); err != nil {
		service.logger.ErrorContext(context, "audit_write_failed",
			slog.String("action", action),
			slog.String("message", message),
			slog.Any("error", err),
		)
	}
}

// List returns every audit entry, oldest first.
func (service *Service) List(context context.Context) ([]*Entry, error) {
	return service.repo.ListEntries(context)
}
