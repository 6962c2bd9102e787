// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmfalves/anidex/internal/platform/ctxutil"
	"github.com/dmfalves/anidex/internal/platform/middleware"
	"github.com/dmfalves/anidex/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string and returns canned claims.
type fakeVerifier struct {
	validToken string
	claims     *sec.AuthClaims
}

func (v *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == v.validToken {
		return v.claims, nil
	}
	return nil, errors.New("bad token")
}

func okHandler(captured **sec.AuthClaims) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if captured != nil {
			*captured = ctxutil.GetAuthUser(request.Context())
		}
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestAuthenticate covers anonymous passthrough, malformed headers, bad tokens,
and successful claim injection.
*/
func TestAuthenticate(t *testing.T) {
	verifier := &fakeVerifier{
		validToken: "good-token",
		claims:     &sec.AuthClaims{UserID: 9, Username: "asuka", Role: "user"},
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantClaims bool
	}{
		{"anonymous_passthrough", "", http.StatusOK, false},
		{"malformed_header", "good-token", http.StatusUnauthorized, false},
		{"wrong_scheme", "Basic good-token", http.StatusUnauthorized, false},
		{"invalid_token", "Bearer forged", http.StatusUnauthorized, false},
		{"valid_token", "Bearer good-token", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *sec.AuthClaims
			handler := middleware.Authenticate(verifier)(okHandler(&captured))

			request := httptest.NewRequest("GET", "/", nil)
			if tt.authHeader != "" {
				request.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantClaims {
				assert.NotNil(t, captured)
				assert.Equal(t, 9, captured.UserID)
			} else {
				assert.Nil(t, captured)
			}
		})
	}
}

/*
TestRequireAuth blocks anonymous requests and passes authenticated ones.
*/
func TestRequireAuth(t *testing.T) {
	handler := middleware.RequireAuth(okHandler(nil))

	t.Run("anonymous_blocked", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("authenticated_allowed", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/", nil)
		ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: 1, Role: "user"})

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

/*
TestRequireRole enforces the role hierarchy on guarded routes.
*/
func TestRequireRole(t *testing.T) {
	handler := middleware.RequireRole(sec.RoleAdmin)(okHandler(nil))

	tests := []struct {
		name       string
		claims     *sec.AuthClaims
		wantStatus int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"plain_user", &sec.AuthClaims{UserID: 2, Role: "user"}, http.StatusForbidden},
		{"unknown_role", &sec.AuthClaims{UserID: 3, Role: "ghost"}, http.StatusForbidden},
		{"admin", &sec.AuthClaims{UserID: 1, Role: "admin"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/", nil)
			if tt.claims != nil {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), tt.claims))
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
