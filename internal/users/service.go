// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmfalves/anidex/internal/audit"
	"github.com/dmfalves/anidex/internal/platform/apperr"
	"github.com/dmfalves/anidex/internal/platform/dberr"
	"github.com/dmfalves/anidex/internal/platform/sec"
	"github.com/dmfalves/anidex/internal/platform/validate"
)

// CreateInput carries the fields accepted when an administrator provisions
// a new account. The plaintext password never reaches the store.
type CreateInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// UpdateInput carries the mutable profile fields for an existing account.
//
// Username and password are deliberately absent: the username is immutable
// and credential changes go through the auth flow.
type UpdateInput struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// Service implements the account management use cases.
//
// Every mutating operation appends exactly one audit entry on success.
type Service struct {
	repo     Repository
	recorder audit.Recorder
	logger   *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repo Repository, recorder audit.Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
	}
}

// List returns a filtered, paginated view of accounts.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*User, int, error) {
	return service.repo.ListUsers(context, filter, limit, offset)
}

// Get returns a single account by ID.
func (service *Service) Get(context context.Context, id int) (*User, error) {
	user, err := service.repo.GetUser(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, err
	}
	return user, nil
}

// Create validates and provisions a new account with a bcrypt-hashed password.
//
// A duplicate username is rejected with a 409 before hashing; the unique
// constraint on users.account remains the backstop for concurrent creates.
func (service *Service) Create(context context.Context, input *CreateInput) (*User, error) {
	if input.Role == "" {
		input.Role = string(sec.RoleUser)
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).MaxLen(FieldUsername, input.Username, 50).
		Required(FieldPassword, input.Password).MinLen(FieldPassword, input.Password, 8).
		Required(FieldEmail, input.Email).
		MaxLen(FieldFullName, input.FullName, 200).
		OneOf(FieldRole, input.Role, string(sec.RoleUser), string(sec.RoleAdmin))
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.repo.FindByUsername(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username already taken")
	} else if !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         sec.UserRole(input.Role),
		IsActive:     true,
	}
	if err := service.repo.CreateUser(context, user); err != nil {
		return nil, err
	}

	service.recorder.Record(context,
		fmt.Sprintf("User %q #%d created.", user.Username, user.ID),
		audit.LevelInfo, audit.ActionCreate,
	)
	service.logger.InfoContext(context, "user_created",
		slog.Int("user_id", user.ID), slog.String("username", user.Username))
	return user, nil
}

// Update overwrites the mutable profile fields of an existing account.
//
// A mismatch between the path ID and the body ID is rejected before any
// store call.
func (service *Service) Update(context context.Context, id int, input *UpdateInput) error {
	validator := &validate.Validator{}
	validator.Custom(FieldID, input.ID != 0 && input.ID != id, "ID does not match the URL parameter").
		Required(FieldEmail, input.Email).
		MaxLen(FieldFullName, input.FullName, 200).
		OneOf(FieldRole, input.Role, string(sec.RoleUser), string(sec.RoleAdmin))
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	user, err := service.Get(context, id)
	if err != nil {
		return err
	}

	user.FullName = input.FullName
	user.Email = input.Email
	user.Role = sec.UserRole(input.Role)
	user.IsActive = input.IsActive

	if err := service.repo.UpdateUser(context, user); err != nil {
		return err
	}

	service.recorder.Record(context,
		fmt.Sprintf("User %q #%d updated.", user.Username, user.ID),
		audit.LevelInfo, audit.ActionUpdate,
	)
	service.logger.InfoContext(context, "user_updated", slog.Int("user_id", user.ID))
	return nil
}

// Disable deactivates an account. The row stays; login is refused until
// an administrator reactivates it through Update.
func (service *Service) Disable(context context.Context, id int) error {
	if err := service.repo.SetActive(context, id, false); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("User")
		}
		return err
	}

	service.recorder.Record(context,
		fmt.Sprintf("User #%d disabled.", id),
		audit.LevelInfo, audit.ActionDisable,
	)
	service.logger.InfoContext(context, "user_disabled", slog.Int("user_id", id))
	return nil
}

// Delete physically removes an account.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.DeleteUser(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound("User")
		}
		return err
	}

	service.recorder.Record(context,
		fmt.Sprintf("User #%d deleted.", id),
		audit.LevelInfo, audit.ActionDelete,
	)
	service.logger.WarnContext(context, "user_deleted", slog.Int("user_id", id))
	return nil
}
