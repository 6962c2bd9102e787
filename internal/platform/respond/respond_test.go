// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

package respond_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfalves/anidex/internal/platform/apperr"
	"github.com/dmfalves/anidex/internal/platform/respond"
	"github.com/dmfalves/anidex/pkg/pagination"
)

type item struct {
	Name string `json:"name"`
}

/*
TestPaginated_EmptyListIsArray guards the list contract: a query matching no
rows serializes "data" as [] rather than null, for both a nil slice (the
natural result of a scan loop with no rows) and an initialized empty one.
*/
func TestPaginated_EmptyListIsArray(t *testing.T) {
	tests := []struct {
		name string
		data []*item
	}{
		{"nil_slice", nil},
		{"empty_slice", []*item{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Paginated(recorder, tt.data, pagination.NewMeta(0, 10, 0))

			assert.JSONEq(t,
				`{"data":[],"meta":{"total_records":0,"page_index":0,"page_size":10,"total_pages":0}}`,
				recorder.Body.String(),
			)
		})
	}
}

/*
TestOK_NilSliceIsArray applies the same normalization to unpaginated lists.
*/
func TestOK_NilSliceIsArray(t *testing.T) {
	var items []*item

	recorder := httptest.NewRecorder()
	respond.OK(recorder, items)

	assert.JSONEq(t, `{"data":[]}`, recorder.Body.String())
}

/*
TestOK_NonSliceUntouched confirms single resources still pass through as-is.
*/
func TestOK_NonSliceUntouched(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, &item{Name: "Akira"})

	assert.JSONEq(t, `{"data":{"name":"Akira"}}`, recorder.Body.String())
}

/*
TestError_Envelope checks the error payload shape and status mapping.
*/
func TestError_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/animes/9", nil)

	respond.Error(recorder, request, apperr.NotFound("Anime"))

	require.Equal(t, 404, recorder.Code)
	assert.JSONEq(t, `{"error":"Anime not found","code":"NOT_FOUND"}`, recorder.Body.String())
}
