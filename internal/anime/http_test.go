package anime_test

import (
	"encoding/json"
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

	"github.com/dmfalves/anidex/internal/anime"
	"github.com/dmfalves/anidex/internal/platform/middleware"
	"github.com/dmfalves/anidex/internal/platform/sec"
)

// staticVerifier maps a fixed token to fixed claims for handler tests.
type staticVerifier struct{}

func (staticVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == "user-token" {
		return &sec.AuthClaims{UserID: 1, Username: "kaji", Role: "user"}, nil
	}
	return nil, errors.New("bad token")
}

func newTestRouter(seed ...*anime.Anime) (*fakeRepo, http.Handler) {
	repo := newFakeRepo(seed...)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := anime.NewHandler(anime.NewService(repo, &fakeRecorder{}, logger))

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(staticVerifier{}))
	router.Mount("/animes", handler.Routes())
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
TestHandler_List verifies the public listing with envelope and metadata.
*/
func TestHandler_List(t *testing.T) {
	_, router := newTestRouter(
		&anime.Anime{ID: 1, Title: "Naruto", Director: "Hayato Date"},
		&anime.Anime{ID: 2, Title: "One Piece", Director: "Konosuke Uda", IsDeleted: true},
	)

	recorder := doRequest(t, router, "GET", "/animes", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []anime.Anime `json:"data"`
		Meta struct {
			TotalRecords int `json:"total_records"`
			PageSize     int `json:"page_size"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	// Soft-deleted records never appear in the public listing.
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Naruto", envelope.Data[0].Title)
	assert.Equal(t, 1, envelope.Meta.TotalRecords)
	assert.Equal(t, 10, envelope.Meta.PageSize)
}

/*
TestHandler_List_FilterAndEmptyResult exercises query-string filtering and
the empty-result body, which must carry a JSON array, not null.
*/
func TestHandler_List_FilterAndEmptyResult(t *testing.T) {
	_, router := newTestRouter(
		&anime.Anime{ID: 1, Title: "Naruto", Director: "Hayato Date"},
		&anime.Anime{ID: 2, Title: "Dragon Ball", Director: "Daisuke Nishio"},
	)

	t.Run("title_filter_applied", func(t *testing.T) {
		recorder := doRequest(t, router, "GET", "/animes?title=naruto", "", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var envelope struct {
			Data []anime.Anime `json:"data"`
			Meta struct {
				TotalRecords int `json:"total_records"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

		assert.Equal(t, 1, envelope.Meta.TotalRecords)
		require.Len(t, envelope.Data, 1)
		assert.Equal(t, "Naruto", envelope.Data[0].Title)
	})

	t.Run("no_match_yields_empty_array", func(t *testing.T) {
		recorder := doRequest(t, router, "GET", "/animes?title=nonexistent", "", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		assert.Contains(t, recorder.Body.String(), `"data":[]`)
		assert.NotContains(t, recorder.Body.String(), `"data":null`)
	})
}

/*
TestHandler_Get covers the public single fetch and its error paths.
*/
func TestHandler_Get(t *testing.T) {
	_, router := newTestRouter(&anime.Anime{ID: 1, Title: "Naruto", Director: "Hayato Date"})

	t.Run("found", func(t *testing.T) {
		recorder := doRequest(t, router, "GET", "/animes/1", "", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing", func(t *testing.T) {
		recorder := doRequest(t, router, "GET", "/animes/42", "", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("non_numeric_id", func(t *testing.T) {
		recorder := doRequest(t, router, "GET", "/animes/abc", "", "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

/*
TestHandler_Create checks auth gating, validation, and the created envelope.
*/
func TestHandler_Create(t *testing.T) {
	payload := `{"title":"Cowboy Bebop","director":"Shinichiro Watanabe"}`

	t.Run("anonymous_rejected", func(t *testing.T) {
		_, router := newTestRouter()
		recorder := doRequest(t, router, "POST", "/animes", "", payload)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("authenticated_created", func(t *testing.T) {
		repo, router := newTestRouter()
		recorder := doRequest(t, router, "POST", "/animes", "user-token", payload)
		require.Equal(t, http.StatusCreated, recorder.Code)
		assert.Len(t, repo.records, 1)
	})

	t.Run("invalid_payload", func(t *testing.T) {
		_, router := newTestRouter()
		recorder := doRequest(t, router, "POST", "/animes", "user-token", `{"title":""}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("broken_json", func(t *testing.T) {
		_, router := newTestRouter()
		recorder := doRequest(t, router, "POST", "/animes", "user-token", `{broken`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

/*
TestHandler_SoftDeleteEndpoints exercises disable and enable round-trips.
*/
func TestHandler_SoftDeleteEndpoints(t *testing.T) {
	repo, router := newTestRouter(&anime.Anime{ID: 1, Title: "Naruto", Director: "Hayato Date"})

	recorder := doRequest(t, router, "PUT", "/animes/1/disable", "user-token", "")
	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.True(t, repo.records[1].IsDeleted)

	recorder = doRequest(t, router, "PUT", "/animes/1/enable", "user-token", "")
	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.False(t, repo.records[1].IsDeleted)

	recorder = doRequest(t, router, "PUT", "/animes/99/disable", "user-token", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestHandler_Delete verifies physical removal over HTTP.
*/
func TestHandler_Delete(t *testing.T) {
	repo, router := newTestRouter(&anime.Anime{ID: 1, Title: "Naruto", Director: "Hayato Date"})

	recorder := doRequest(t, router, "DELETE", "/animes/1", "user-token", "")
	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, repo.records)

	recorder = doRequest(t, router, "DELETE", "/animes/1", "user-token", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
