package users_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfalves/anidex/internal/platform/middleware"
	"github.com/dmfalves/anidex/internal/platform/sec"
	"github.com/dmfalves/anidex/internal/users"
)

// staticVerifier maps fixed tokens to fixed claims for handler tests.
type staticVerifier struct{}

func (staticVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	switch tokenStr {
	case "user-token":
		return &sec.AuthClaims{UserID: 1, Username: "shinji", Role: "user"}, nil
	case "admin-token":
		return &sec.AuthClaims{UserID: 99, Username: "gendo", Role: "admin"}, nil
	}
	return nil, errors.New("bad token")
}

func newTestRouter(seed ...*users.User) (*fakeRepo, http.Handler) {
	repo := newFakeRepo(seed...)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := users.NewHandler(users.NewService(repo, &fakeRecorder{}, logger))

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(staticVerifier{}))
	router.Mount("/users", handler.Routes())
	return repo, router
}

func doRequest(t *testing.T, handler http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_GetUser enforces the self-or-admin rule on single-account reads.
*/
func TestHandler_GetUser(t *testing.T) {
	seed := []*users.User{
		{ID: 1, Username: "shinji", Role: sec.RoleUser, IsActive: true},
		{ID: 2, Username: "rei", Role: sec.RoleUser, IsActive: true},
	}

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{"anonymous_rejected", "/users/1", "", http.StatusUnauthorized},
		{"own_account_allowed", "/users/1", "user-token", http.StatusOK},
		{"other_account_forbidden", "/users/2", "user-token", http.StatusForbidden},
		{"admin_reads_anyone", "/users/2", "admin-token", http.StatusOK},
		{"admin_missing_account", "/users/42", "admin-token", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := newTestRouter(seed...)
			recorder := doRequest(t, router, "GET", tt.path, tt.token, "")

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestHandler_AdminGating verifies that management endpoints refuse plain users.
*/
func TestHandler_AdminGating(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"list", "GET", "/users", ""},
		{"create", "POST", "/users", `{"username":"rei","password":"long-enough-pw","email":"rei@nerv.jp"}`},
		{"update", "PUT", "/users/1", `{"email":"x@y.com","role":"user"}`},
		{"disable", "PUT", "/users/1/disable", ""},
		{"delete", "DELETE", "/users/1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := newTestRouter(&users.User{ID: 1, Username: "shinji"})

			recorder := doRequest(t, router, tt.method, tt.path, "user-token", tt.body)
			assert.Equal(t, http.StatusForbidden, recorder.Code)

			recorder = doRequest(t, router, tt.method, tt.path, "", tt.body)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

/*
TestHandler_CreateUser verifies the admin provisioning flow over HTTP.
*/
func TestHandler_CreateUser(t *testing.T) {
	repo, router := newTestRouter()

	payload := `{"username":"rei","password":"long-enough-pw","email":"rei@nerv.jp","full_name":"Rei Ayanami"}`
	recorder := doRequest(t, router, "POST", "/users", "admin-token", payload)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Len(t, repo.records, 1)

	// The password hash must never leak into the response body.
	assert.NotContains(t, recorder.Body.String(), "password")
	assert.NotContains(t, recorder.Body.String(), "$2")

	// Duplicate username now conflicts.
	recorder = doRequest(t, router, "POST", "/users", "admin-token", payload)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}
