// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmfalves/anidex/pkg/query"
)

/*
TestILikeAll verifies predicate construction: empty filters are skipped,
set filters are ANDed in order, and every value travels as a wildcarded
argument rather than SQL text.
*/
func TestILikeAll(t *testing.T) {
	tests := []struct {
		name          string
		filters       []query.Substring
		wantPredicate string
		wantArgs      []any
	}{
		{
			name:          "no_filters",
			filters:       nil,
			wantPredicate: "",
			wantArgs:      []any{},
		},
		{
			name:          "all_empty_values",
			filters:       []query.Substring{{Column: "title", Value: ""}, {Column: "director", Value: ""}},
			wantPredicate: "",
			wantArgs:      []any{},
		},
		{
			name:          "single_filter",
			filters:       []query.Substring{{Column: "title", Value: "Naruto"}},
			wantPredicate: " AND title ILIKE $1",
			wantArgs:      []any{"%Naruto%"},
		},
		{
			name: "multiple_filters_anded_in_order",
			filters: []query.Substring{
				{Column: "title", Value: "Ghost"},
				{Column: "summary", Value: "cyborg"},
				{Column: "director", Value: "Oshii"},
			},
			wantPredicate: " AND title ILIKE $1 AND summary ILIKE $2 AND director ILIKE $3",
			wantArgs:      []any{"%Ghost%", "%cyborg%", "%Oshii%"},
		},
		{
			name: "empty_value_does_not_consume_placeholder",
			filters: []query.Substring{
				{Column: "title", Value: ""},
				{Column: "director", Value: "Miyazaki"},
			},
			wantPredicate: " AND director ILIKE $1",
			wantArgs:      []any{"%Miyazaki%"},
		},
		{
			name:          "injection_attempt_stays_in_args",
			filters:       []query.Substring{{Column: "title", Value: "'; DROP TABLE catalog.anime; --"}},
			wantPredicate: " AND title ILIKE $1",
			wantArgs:      []any{"%'; DROP TABLE catalog.anime; --%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predicate, args := query.ILikeAll(tt.filters...)

			assert.Equal(t, tt.wantPredicate, predicate)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
