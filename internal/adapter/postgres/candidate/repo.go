// Package candidate implements the film and book candidate repository.
package candidate

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

const (
	table  = "candidates"
	entity = "candidate"
)

var columns = []string{"id", "club", "title", "creator", "year", "suggested_by", "created_at"}

// Repo provides candidate persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new candidate repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a candidate.
func (r *Repo) Create(ctx context.Context, c *domain.Candidate) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, string(c.Club), c.Title, c.Creator, c.Year, c.SuggestedBy, c.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, c.ID)
	}
	return nil
}

// ListByClub returns a club's candidates, oldest first.
func (r *Repo) ListByClub(ctx context.Context, club domain.Club) ([]domain.Candidate, error) {
	return r.list(ctx, sq.Eq{"club": string(club)})
}

// GetByIDs returns the candidates with the given ids. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Candidate, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, sq.Eq{"id": ids})
}

// Exists reports whether id is a candidate of club.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID, club domain.Club) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{"id": id, "club": string(club)}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, postgres.MapError(err, entity, id)
	}
	return ok, nil
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer) ([]domain.Candidate, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Candidate, error) {
		var (
			c    domain.Candidate
			club string
		)
		err := row.Scan(&c.ID, &club, &c.Title, &c.Creator, &c.Year, &c.SuggestedBy, &c.CreatedAt)
		c.Club = domain.Club(club)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan candidates: %w", err)
	}
	return out, nil
}
