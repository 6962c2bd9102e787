package audit

import "context"

// Repository defines the data access contract for audit log entries.
type Repository interface {
	// Insert appends a new entry. The store assigns the ID.
	Insert(context context.Context, entry *Entry) error

	// ListEntries returns every entry, oldest first.
	ListEntries(context context.Context) ([]*Entry, error)
}
