// Copyright (c) 2026 Anidex. All rights reserved.
// Author: dm.falves@outlook.com

package users

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmfalves/anidex/internal/platform/database/schema"
	"github.com/dmfalves/anidex/internal/platform/dberr"
	"github.com/dmfalves/anidex/pkg/query"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// accountColumns is the canonical select list, kept in one place so every
// scan site stays in sync with scanUser.
func accountColumns() string {
	return strings.Join(schema.UserAccount.Columns(), ", ")
}

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	u := &User{}
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Role,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt, &u.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (repository *PostgresRepository) ListUsers(context context.Context, f Filter, limit, offset int) ([]*User, int, error) {
	baseQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE TRUE`,
		accountColumns(), schema.UserAccount.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`,
		schema.UserAccount.Table,
	)

	// Each non-empty filter is a case-insensitive substring match, ANDed together.
	predicate, args := query.ILikeAll(
		query.Substring{Column: schema.UserAccount.Username, Value: f.Username},
		query.Substring{Column: schema.UserAccount.FullName, Value: f.FullName},
		query.Substring{Column: schema.UserAccount.Email, Value: f.Email},
	)

	var total int
	if err := repository.db.QueryRow(context, countQuery+predicate, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	query := baseQuery + predicate +
		fmt.Sprintf(" ORDER BY %s ASC", schema.UserAccount.ID) +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var accounts []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		accounts = append(accounts, u)
	}

	return accounts, total, nil
}

func (repository *PostgresRepository) GetUser(context context.Context, id int) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns(), schema.UserAccount.Table, schema.UserAccount.ID,
	)

	u, err := scanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user")
	}
	return u, nil
}

func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		accountColumns(), schema.UserAccount.Table, schema.UserAccount.Username,
	)

	u, err := scanUser(repository.db.QueryRow(context, query, username))
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_username")
	}
	return u, nil
}

func (repository *PostgresRepository) CreateUser(context context.Context, u *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s, %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Username, schema.UserAccount.Email, schema.UserAccount.Password,
		schema.UserAccount.FullName, schema.UserAccount.Role, schema.UserAccount.IsActive,
		schema.UserAccount.CreatedAt,
		schema.UserAccount.ID, schema.UserAccount.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		u.Username, u.Email, u.PasswordHash, u.FullName, u.Role, u.IsActive,
	).Scan(&u.ID, &u.CreatedAt)
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) UpdateUser(context context.Context, u *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.FullName, schema.UserAccount.Email,
		schema.UserAccount.Role, schema.UserAccount.IsActive,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, u.ID, u.FullName, u.Email, u.Role, u.IsActive).
		Scan(&u.UpdatedAt)
	return dberr.Wrap(err, "update_user")
}

func (repository *PostgresRepository) SetActive(context context.Context, id int, active bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.IsActive,
		schema.UserAccount.UpdatedAt, schema.UserAccount.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, active)
	if err != nil {
		return dberr.Wrap(err, "set_user_active")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) UpdateLastLogin(context context.Context, id int, at time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.LastLoginAt, schema.UserAccount.ID,
	)

	_, err := repository.db.Exec(context, query, id, at)
	return dberr.Wrap(err, "update_last_login")
}

func (repository *PostgresRepository) DeleteUser(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
