// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

/*
Package auth implements authentication for the Anidex platform.

It covers credential verification (bcrypt), stateless session issuance
(JWT access tokens), self-service registration, and a Redis-backed
brute-force throttle on the login path.
*/
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmfalves/anidex/internal/audit"
	"github.com/dmfalves/anidex/internal/platform/apperr"
	"github.com/dmfalves/anidex/internal/platform/constants"
	"github.com/dmfalves/anidex/internal/platform/dberr"
	"github.com/dmfalves/anidex/internal/platform/sec"
	"github.com/dmfalves/anidex/internal/platform/validate"
	"github.com/dmfalves/anidex/internal/users"
)

// TokenProvider abstracts token issuance so the service can be tested
// without real signing keys.
type TokenProvider interface {
	GenerateAccessToken(userID int, username, role string, timeToLive time.Duration) (string, time.Time, error)
}

// AttemptThrottle abstracts the brute-force counter. Implementations must
// fail open; none of these methods return errors.
type AttemptThrottle interface {
	Fail(context context.Context, username string)
	TooMany(context context.Context, username string) bool
	Reset(context context.Context, username string)
}

// LoginInput carries the credentials presented at POST /auth/login.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterInput carries the fields for self-service registration.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// LoginResult is the successful login payload: a signed token, its expiry,
// and the authenticated account.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *users.User `json:"user"`
}

// Service implements the authentication use cases.
type Service struct {
	accounts users.Repository
	tokens   TokenProvider
	throttle AttemptThrottle
	recorder audit.Recorder
	logger   *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(accounts users.Repository, tokens TokenProvider, throttle AttemptThrottle, recorder audit.Recorder, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		tokens:   tokens,
		throttle: throttle,
		recorder: recorder,
		logger:   logger,
	}
}

// Login verifies credentials and issues a signed access token.
//
// # Security
//
// Unknown username, wrong password, and deactivated account all return the
// SAME generic 401 so the endpoint cannot be used for account enumeration.
// Each failure increments the per-username throttle; once the budget is
// exhausted the endpoint answers 429 until the window expires.
func (service *Service) Login(context context.Context, input *LoginInput) (*LoginResult, error) {
	validator := &validate.Validator{}
	validator.Required(users.FieldUsername, input.Username).
		Required(users.FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if service.throttle.TooMany(context, input.Username) {
		service.logger.WarnContext(context, "login_throttled", slog.String("username", input.Username))
		return nil, apperr.RateLimited(int(constants.LoginFailureWindow.Seconds()))
	}

	user, err := service.accounts.FindByUsername(context, input.Username)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, service.rejectLogin(context, input.Username, "unknown_username")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, service.rejectLogin(context, input.Username, "inactive_account")
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, service.rejectLogin(context, input.Username, "password_mismatch")
	}

	token, expiresAt, err := service.tokens.GenerateAccessToken(user.ID, user.Username, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := time.Now().UTC()
	if err := service.accounts.UpdateLastLogin(context, user.ID, now); err != nil {
		// Bookkeeping only. The login already succeeded.
		service.logger.ErrorContext(context, "last_login_update_failed",
			slog.Int("user_id", user.ID), slog.String("error", err.Error()))
	} else {
		user.LastLogin = &now
	}

	service.throttle.Reset(context, user.Username)
	service.logger.InfoContext(context, "login_succeeded",
		slog.Int("user_id", user.ID), slog.String("username", user.Username))

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// rejectLogin records the failure and returns the generic credential error.
func (service *Service) rejectLogin(context context.Context, username, reason string) error {
	service.throttle.Fail(context, username)
	service.logger.WarnContext(context, "login_rejected",
		slog.String("username", username), slog.String("reason", reason))
	return apperr.Unauthorized("Invalid username or password")
}

// Register provisions a new active account with the default role.
//
// Duplicate usernames are rejected with 409 before hashing; the unique
// constraint on users.account remains the backstop for concurrent requests.
func (service *Service) Register(context context.Context, input *RegisterInput) (*users.User, error) {
	validator := &validate.Validator{}
	validator.Required(users.FieldUsername, input.Username).MaxLen(users.FieldUsername, input.Username, 50).
		Required(users.FieldPassword, input.Password).MinLen(users.FieldPassword, input.Password, 8).
		Required(users.FieldEmail, input.Email).
		MaxLen(users.FieldFullName, input.FullName, 200)
	if input.Email != "" {
		validator.Email(users.FieldEmail, input.Email)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.accounts.FindByUsername(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username already taken")
	} else if !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &users.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         sec.RoleUser,
		IsActive:     true,
	}
	if err := service.accounts.CreateUser(context, user); err != nil {
		return nil, err
	}

	service.recorder.Record(context,
		fmt.Sprintf("User %q #%d registered.", user.Username, user.ID),
		audit.LevelInfo, audit.ActionCreate,
	)
	service.logger.InfoContext(context, "user_registered",
		slog.Int("user_id", user.ID), slog.String("username", user.Username))

	return user, nil
}
