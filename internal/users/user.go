// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

/*
Package users implements account management for the Anidex platform.

It defines the User entity and the admin-facing account lifecycle: listing,
creation, profile updates, deactivation, and permanent removal. The auth
package builds login/registration on top of this package's store.
*/
package users

import (
	"time"

	"github.com/dmfalves/anidex/internal/platform/sec"
)

// User represents a registered account.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	// PasswordHash is the bcrypt digest. Explicitly omitted from JSON for security.
	PasswordHash string       `json:"-"`
	FullName     string       `json:"full_name"`
	Role         sec.UserRole `json:"role"`
	// IsActive gates login. Deactivated accounts keep their row but cannot
	// authenticate.
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Filter holds the parameters for a paginated account search.
//
// Non-empty fields are case-insensitive substring matches, ANDed together.
type Filter struct {
	Username string
	FullName string
	Email    string
}

// # Field Identifiers

const (
	FieldID       = "id"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldFullName = "full_name"
	FieldRole     = "role"
)
