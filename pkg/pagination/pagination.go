// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how skip/take navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
// Pages are 0-indexed: skip = pageIndex * pageSize.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultPageSize is the number of items per page if not specified.
	DefaultPageSize = 10
	// MaxPageSize is the upper bound for items per page to prevent system abuse.
	MaxPageSize = 100
	// DefaultPageIndex is the starting page (0-indexed).
	DefaultPageIndex = 0
)

// Params holds the parsed pageIndex and pageSize from a request's query string.
type Params struct {
	PageIndex int
	PageSize  int
}

// Offset returns the SQL OFFSET value derived from [PageIndex] and [PageSize].
func (p Params) Offset() int {
	if p.PageIndex <= 0 {
		return 0
	}
	return p.PageIndex * p.PageSize
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	TotalRecords int `json:"total_records"`
	PageIndex    int `json:"page_index"`
	PageSize     int `json:"page_size"`
	TotalPages   int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and page size.
func NewMeta(pageIndex, pageSize, totalRecords int) Meta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalRecords + pageSize - 1) / pageSize
	}

	return Meta{
		TotalRecords: totalRecords,
		PageIndex:    pageIndex,
		PageSize:     pageSize,
		TotalPages:   totalPages,
	}
}

// FromRequest parses "pageIndex" and "pageSize" query parameters from an HTTP request.
//
// # Clamping
//
// A negative pageIndex falls back to [DefaultPageIndex]. A zero, negative, or
// excessive pageSize falls back to [DefaultPageSize]; "no limit" is never
// granted to a client.
func FromRequest(r *http.Request) Params {
	pageIndex := parseIntParam(r, "pageIndex", DefaultPageIndex)
	pageSize := parseIntParam(r, "pageSize", DefaultPageSize)

	if pageIndex < 0 {
		pageIndex = DefaultPageIndex
	}

	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	return Params{PageIndex: pageIndex, PageSize: pageSize}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
