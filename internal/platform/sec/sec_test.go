// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfalves/anidex/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

/*
TestHashPassword verifies that hashing is salted and verification round-trips.
*/
func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	// bcrypt hashes are self-describing and never store the plaintext.
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.NotContains(t, hash, "correct horse")

	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))

	// Same input, different salt, different digest.
	otherHash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, hash, otherHash)
}

/*
TestNewTokenService_SecretLength rejects weak signing secrets.
*/
func TestNewTokenService_SecretLength(t *testing.T) {
	_, err := sec.NewTokenService("too-short", "anidex.app")
	assert.Error(t, err)

	service, err := sec.NewTokenService(testSecret, "anidex.app")
	require.NoError(t, err)
	assert.NotNil(t, service)
}

/*
TestTokenService_RoundTrip generates a token and verifies its claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "anidex.app")
	require.NoError(t, err)

	token, expiresAt, err := service.GenerateAccessToken(42, "misato", "admin", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "misato", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "anidex.app", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
}

/*
TestTokenService_VerifyToken_Rejections covers expired, malformed, and
foreign-signed tokens.
*/
func TestTokenService_VerifyToken_Rejections(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "anidex.app")
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		token, _, err := service.GenerateAccessToken(1, "shinji", "user", -time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := service.VerifyToken("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("foreign_secret", func(t *testing.T) {
		foreign, err := sec.NewTokenService(strings.Repeat("x", 32), "anidex.app")
		require.NoError(t, err)

		token, _, err := foreign.GenerateAccessToken(1, "shinji", "user", time.Hour)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})
}

/*
TestUserRole_AtLeast checks the role hierarchy used by the route guards.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name   string
		role   sec.UserRole
		target sec.UserRole
		want   bool
	}{
		{"admin_meets_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"admin_meets_user", sec.RoleAdmin, sec.RoleUser, true},
		{"user_meets_user", sec.RoleUser, sec.RoleUser, true},
		{"user_below_admin", sec.RoleUser, sec.RoleAdmin, false},
		{"unknown_below_user", sec.UserRole("ghost"), sec.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.target))
		})
	}
}
