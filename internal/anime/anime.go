package anime

import "time"

// Anime represents a single catalogued series or film.
type Anime struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Director string `json:"director"`
	// IsDeleted is the soft-delete flag. Disabled records stay in storage and
	// can be re-enabled; only the delete endpoint removes them physically.
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated anime search.
//
// Non-empty fields are case-insensitive substring matches, ANDed together.
type Filter struct {
	Director string
	Title    string
	Summary  string
}

const (
	FieldID       = "id"
	FieldTitle    = "title"
	FieldSummary  = "summary"
	FieldDirector = "director"
)
