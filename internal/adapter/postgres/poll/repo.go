// Package poll implements the poll repository using PostgreSQL.
package poll

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
	table  = "polls"
	entity = "poll"
)

var columns = []string{"id", "context_id", "club", "closes_at", "is_closed", "created_by", "created_at"}

// Repo provides poll persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new poll repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a poll by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, id)
}

// GetByContextID returns the poll bound to an external context (an event).
func (r *Repo) GetByContextID(ctx context.Context, contextID uuid.UUID) (*domain.Poll, error) {
	return r.getBy(ctx, sq.Eq{"context_id": contextID}, contextID)
}

// Create inserts a poll. A second poll for the same context violates the
// unique index and yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Poll) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.ContextID, string(p.Club), p.ClosesAt, p.IsClosed, p.CreatedBy, p.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, p.ID)
	}
	return nil
}

// Save persists the mutable poll state.
func (r *Repo) Save(ctx context.Context, p *domain.Poll) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_closed", p.IsClosed).
		Set("closes_at", p.ClosesAt).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, p.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, p.ID)
	}
	return nil
}

func (r *Repo) getBy(ctx context.Context, where sq.Eq, key uuid.UUID) (*domain.Poll, error) {
	query, args, err := postgres.Builder().Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var (
		p    domain.Poll
		club string
	)
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&p.ID, &p.ContextID, &club, &p.ClosesAt, &p.IsClosed, &p.CreatedBy, &p.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	p.Club = domain.Club(club)
	return &p, nil
}
