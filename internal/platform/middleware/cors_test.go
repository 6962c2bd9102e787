// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmfalves/anidex/internal/platform/middleware"
)

// fakeConfig satisfies the CORS AppConfig interface.
type fakeConfig struct {
	development  bool
	extraOrigins []string
}

func (c fakeConfig) IsDevelopment() bool      { return c.development }
func (c fakeConfig) AllowedOrigins() []string { return c.extraOrigins }

/*
TestCORS verifies the production origin allow-list, in particular that
lookalike domains sharing only a string suffix are rejected.
*/
func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		cfg         fakeConfig
		origin      string
		wantAllowed bool
	}{
		{"prod_apex_allowed", fakeConfig{}, "https://anidex.app", true},
		{"prod_subdomain_allowed", fakeConfig{}, "https://www.anidex.app", true},
		{"prod_lookalike_rejected", fakeConfig{}, "https://evil-anidex.app", false},
		{"prod_embedded_name_rejected", fakeConfig{}, "https://anidex.app.evil.com", false},
		{"prod_foreign_rejected", fakeConfig{}, "https://example.com", false},
		{"prod_extra_origin_allowed", fakeConfig{extraOrigins: []string{"https://staging.example.com"}}, "https://staging.example.com", true},
		{"dev_any_origin_allowed", fakeConfig{development: true}, "https://localhost:3000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(tt.cfg)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(http.StatusOK)
			}))

			request := httptest.NewRequest("GET", "/animes", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			allowOrigin := recorder.Header().Get("Access-Control-Allow-Origin")
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, allowOrigin)
			} else {
				assert.Empty(t, allowOrigin)
			}
		})
	}
}

/*
TestCORS_Preflight confirms OPTIONS requests short-circuit with 204.
*/
func TestCORS_Preflight(t *testing.T) {
	reached := false
	handler := middleware.CORS(fakeConfig{})(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		reached = true
	}))

	request := httptest.NewRequest("OPTIONS", "/animes", nil)
	request.Header.Set("Origin", "https://anidex.app")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.False(t, reached)
}

/*
TestCORS_NoOriginPassthrough confirms same-origin requests skip CORS headers.
*/
func TestCORS_NoOriginPassthrough(t *testing.T) {
	handler := middleware.CORS(fakeConfig{})(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/animes", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}
