// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

// Package query provides small helpers for building parameterized SQL
// fragments shared by the Postgres repositories.
package query

import (
	"fmt"
	"strings"
)

// Substring is one case-insensitive substring condition on a column.
type Substring struct {
	Column string
	Value  string
}

// ILikeAll builds an " AND <column> ILIKE $n" clause for every non-empty
// filter value, ANDed together, with placeholders numbered from $1.
//
// It returns the predicate fragment (empty when no filter is set) and the
// matching argument list, each value wrapped in % wildcards. Values are
// always passed as arguments, never interpolated, so user input cannot
// reach the SQL text.
func ILikeAll(filters ...Substring) (string, []any) {
	var predicate strings.Builder
	args := make([]any, 0, len(filters))

	for _, filter := range filters {
		if filter.Value == "" {
			continue
		}
		args = append(args, "%"+filter.Value+"%")
		fmt.Fprintf(&predicate, " AND %s ILIKE $%d", filter.Column, len(args))
	}

	return predicate.String(), args
}
