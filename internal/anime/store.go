package anime

import "context"

// Repository defines the data access contract for anime records.
type Repository interface {
	// ListAnimes returns a filtered page of non-deleted records plus the
	// total count matching the same predicate.
	ListAnimes(context context.Context, f Filter, limit, offset int) ([]*Anime, int, error)

	// ListByDeleted returns all records partitioned by the soft-delete flag.
	ListByDeleted(context context.Context, deleted bool) ([]*Anime, error)

	// GetAnime returns a record by ID regardless of its soft-delete state.
	GetAnime(context context.Context, id int) (*Anime, error)

	// CreateAnime persists a new record. The store assigns the ID.
	CreateAnime(context context.Context, a *Anime) error

	// UpdateAnime overwrites the mutable fields of an existing record.
	UpdateAnime(context context.Context, a *Anime) error

	// SetDeleted toggles the soft-delete flag.
	SetDeleted(context context.Context, id int, deleted bool) error

	// DeleteAnime physically removes a record.
	DeleteAnime(context context.Context, id int) error
}
