package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmfalves/anidex/internal/platform/database/schema"
	"github.com/dmfalves/anidex/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Insert(context context.Context, entry *Entry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.SystemAuditLog.Table, schema.SystemAuditLog.Message, schema.SystemAuditLog.Level,
		schema.SystemAuditLog.Action, schema.SystemAuditLog.Timestamp,
		schema.SystemAuditLog.ID,
	)

	err := repository.db.QueryRow(context, query, entry.Message, entry.Level, entry.Action, entry.Timestamp).Scan(&entry.ID)
	return dberr.Wrap(err, "insert_audit_entry")
}

func (repository *PostgresRepository) ListEntries(context context.Context) ([]*Entry, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.SystemAuditLog.ID, schema.SystemAuditLog.Message, schema.SystemAuditLog.Level,
		schema.SystemAuditLog.Action, schema.SystemAuditLog.Timestamp,
		schema.SystemAuditLog.Table, schema.SystemAuditLog.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_audit_entries")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.Message, &e.Level, &e.Action, &e.Timestamp); err != nil {
			return nil, dberr.Wrap(err, "scan_audit_entry")
		}
		entries = append(entries, e)
	}

	return entries, nil
}
