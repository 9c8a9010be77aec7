// Package ballot implements the ballot repository using PostgreSQL.
// The unique index on (poll_id, member_id) is the authoritative guard against
// double voting.
package ballot

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

const (
	table  = "ballots"
	entity = "ballot"
)

var columns = []string{"id", "poll_id", "choice_id", "member_id", "created_at"}

// Repo provides ballot persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ballot repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// FindByPollAndMember returns the member's ballot in the poll, or nil when
// the member has not voted.
func (r *Repo) FindByPollAndMember(ctx context.Context, pollID, memberID uuid.UUID) (*domain.Ballot, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"poll_id": pollID, "member_id": memberID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var b domain.Ballot
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.PollID, &b.ChoiceID, &b.MemberID, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, entity, pollID)
	}
	return &b, nil
}

// ListByPoll returns the poll's ballots in the order they were cast.
func (r *Repo) ListByPoll(ctx context.Context, pollID uuid.UUID) ([]domain.Ballot, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"poll_id": pollID}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ballots for poll %s: %w", pollID, err)
	}
	ballots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ballot, error) {
		var b domain.Ballot
		err := row.Scan(&b.ID, &b.PollID, &b.ChoiceID, &b.MemberID, &b.CreatedAt)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan ballots for poll %s: %w", pollID, err)
	}
	return ballots, nil
}

// Create stores a ballot. A second ballot by the same member in the same poll
// yields domain.ErrAlreadyExists; an unknown choice yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, b *domain.Ballot) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(b.ID, b.PollID, b.ChoiceID, b.MemberID, b.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, b.ID)
	}
	return nil
}
