package anime

import (
	"context"
	"fmt"
	"strconv"

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

func (repository *PostgresRepository) ListAnimes(context context.Context, f Filter, limit, offset int) ([]*Anime, int, error) {
	baseQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = FALSE
	`,
		schema.CatalogAnime.ID, schema.CatalogAnime.Title, schema.CatalogAnime.Summary,
		schema.CatalogAnime.Director, schema.CatalogAnime.IsDeleted,
		schema.CatalogAnime.CreatedAt, schema.CatalogAnime.UpdatedAt,
		schema.CatalogAnime.Table, schema.CatalogAnime.IsDeleted,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = FALSE`,
		schema.CatalogAnime.Table, schema.CatalogAnime.IsDeleted,
	)

	// Each non-empty filter is a case-insensitive substring match, ANDed together.
	predicate, args := query.ILikeAll(
		query.Substring{Column: schema.CatalogAnime.Title, Value: f.Title},
		query.Substring{Column: schema.CatalogAnime.Summary, Value: f.Summary},
		query.Substring{Column: schema.CatalogAnime.Director, Value: f.Director},
	)

	var total int
	if err := repository.db.QueryRow(context, countQuery+predicate, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_animes")
	}

	query := baseQuery + predicate +
		fmt.Sprintf(" ORDER BY %s ASC", schema.CatalogAnime.ID) +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_animes")
	}
	defer rows.Close()

	var animes []*Anime
	for rows.Next() {
		a := &Anime{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Summary, &a.Director, &a.IsDeleted, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_anime")
		}
		animes = append(animes, a)
	}

	return animes, total, nil
}

func (repository *PostgresRepository) ListByDeleted(context context.Context, deleted bool) ([]*Anime, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.CatalogAnime.ID, schema.CatalogAnime.Title, schema.CatalogAnime.Summary,
		schema.CatalogAnime.Director, schema.CatalogAnime.IsDeleted,
		schema.CatalogAnime.CreatedAt, schema.CatalogAnime.UpdatedAt,
		schema.CatalogAnime.Table, schema.CatalogAnime.IsDeleted, schema.CatalogAnime.ID,
	)

	rows, err := repository.db.Query(context, query, deleted)
	if err != nil {
		return nil, dberr.Wrap(err, "list_animes_by_deleted")
	}
	defer rows.Close()

	var animes []*Anime
	for rows.Next() {
		a := &Anime{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Summary, &a.Director, &a.IsDeleted, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_anime")
		}
		animes = append(animes, a)
	}

	return animes, nil
}

func (repository *PostgresRepository) GetAnime(context context.Context, id int) (*Anime, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogAnime.ID, schema.CatalogAnime.Title, schema.CatalogAnime.Summary,
		schema.CatalogAnime.Director, schema.CatalogAnime.IsDeleted,
		schema.CatalogAnime.CreatedAt, schema.CatalogAnime.UpdatedAt,
		schema.CatalogAnime.Table, schema.CatalogAnime.ID,
	)

	a := &Anime{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Title, &a.Summary, &a.Director, &a.IsDeleted, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_anime")
	}

	return a, nil
}

func (repository *PostgresRepository) CreateAnime(context context.Context, a *Anime) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CatalogAnime.Table, schema.CatalogAnime.Title, schema.CatalogAnime.Summary,
		schema.CatalogAnime.Director, schema.CatalogAnime.IsDeleted,
		schema.CatalogAnime.CreatedAt, schema.CatalogAnime.UpdatedAt,
		schema.CatalogAnime.ID, schema.CatalogAnime.CreatedAt, schema.CatalogAnime.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, a.Title, a.Summary, a.Director, a.IsDeleted).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_anime")
}

func (repository *PostgresRepository) UpdateAnime(context context.Context, a *Anime) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CatalogAnime.Table, schema.CatalogAnime.Title, schema.CatalogAnime.Summary,
		schema.CatalogAnime.Director, schema.CatalogAnime.UpdatedAt,
		schema.CatalogAnime.ID,
		schema.CatalogAnime.IsDeleted, schema.CatalogAnime.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, a.ID, a.Title, a.Summary, a.Director).
		Scan(&a.IsDeleted, &a.UpdatedAt)
	return dberr.Wrap(err, "update_anime")
}

func (repository *PostgresRepository) SetDeleted(context context.Context, id int, deleted bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.CatalogAnime.Table, schema.CatalogAnime.IsDeleted,
		schema.CatalogAnime.UpdatedAt, schema.CatalogAnime.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, deleted)
	if err != nil {
		return dberr.Wrap(err, "set_anime_deleted")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteAnime(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogAnime.Table, schema.CatalogAnime.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_anime")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
