// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

package users

import (
	"context"
	"time"
)

// Repository defines the data access contract for user accounts.
//
// It is shared by this package's admin handlers and by the auth package's
// login/registration flow.
type Repository interface {
	// ListUsers returns a filtered page of accounts plus the total count
	// matching the same predicate.
	ListUsers(context context.Context, f Filter, limit, offset int) ([]*User, int, error)

	// GetUser returns an account by ID.
	GetUser(context context.Context, id int) (*User, error)

	// FindByUsername returns the account with the given unique username.
	FindByUsername(context context.Context, username string) (*User, error)

	// CreateUser persists a new account. The store assigns the ID.
	CreateUser(context context.Context, user *User) error

	// UpdateUser overwrites the mutable profile fields (full name, email,
	// role, active flag) and refreshes the update timestamp.
	UpdateUser(context context.Context, user *User) error

	// SetActive toggles the login gate.
	SetActive(context context.Context, id int, active bool) error

	// UpdateLastLogin records a successful authentication.
	UpdateLastLogin(context context.Context, id int, at time.Time) error

	// DeleteUser physically removes an account.
	DeleteUser(context context.Context, id int) error
}
