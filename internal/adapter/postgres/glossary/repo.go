// Package glossary implements the glossary entry repository using PostgreSQL.
// Pending suggestions live in a JSONB column of the entry row; saves are
// guarded by an optimistic version check.
package glossary

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

const (
	table  = "glossary_entries"
	entity = "glossary_entry"
)

var columns = []string{
	"id", "phrase", "phrase_normalized", "pinyin", "category", "explanations",
	"approved", "suggestions", "version", "created_by", "created_at", "updated_at",
}

// Repo provides glossary entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new glossary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GlossaryEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	e, err := scanEntry(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return e, nil
}

// List returns entries ordered by normalized phrase.
func (r *Repo) List(ctx context.Context, f domain.RecordFilter) ([]*domain.GlossaryEntry, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("phrase_normalized", "id")

	if f.Query != "" {
		b = b.Where(sq.Like{"phrase_normalized": "%" + postgres.EscapeLike(domain.NormalizeText(f.Query)) + "%"})
	}
	if f.OnlyApproved {
		b = b.Where(sq.Or{sq.Eq{"approved": true}, sq.Eq{"created_by": f.Viewer}})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	return r.query(ctx, b)
}

// ListPending returns entries awaiting moderation, oldest first.
func (r *Repo) ListPending(ctx context.Context, limit int) ([]*domain.GlossaryEntry, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(postgres.PendingPredicate).
		OrderBy("created_at", "id").
		Limit(uint64(limit))

	return r.query(ctx, b)
}

// Create inserts a new entry at version 1.
func (r *Repo) Create(ctx context.Context, e *domain.GlossaryEntry) error {
	explanations, suggestions, err := encode(e)
	if err != nil {
		return err
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			e.ID, e.Phrase, e.PhraseNormalized, e.Pinyin, e.Category, explanations,
			e.Approved, suggestions, 1, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, e.ID)
	}
	e.Version = 1
	return nil
}

// Save writes all fields and the suggestion list if the stored version still
// equals e.Version, then bumps the version. A concurrent modification yields
// domain.ErrConflict.
func (r *Repo) Save(ctx context.Context, e *domain.GlossaryEntry) error {
	explanations, suggestions, err := encode(e)
	if err != nil {
		return err
	}

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"phrase":            e.Phrase,
			"phrase_normalized": e.PhraseNormalized,
			"pinyin":            e.Pinyin,
			"category":          e.Category,
			"explanations":      explanations,
			"approved":          e.Approved,
			"suggestions":       suggestions,
			"updated_at":        e.UpdatedAt,
			"version":           sq.Expr("version + 1"),
		}).
		Where(sq.Eq{"id": e.ID, "version": e.Version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, e.ID)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrStale(ctx, q, e)
	}

	e.Version++
	return nil
}

// Delete removes an entry.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

func (r *Repo) missingOrStale(ctx context.Context, q postgres.Querier, e *domain.GlossaryEntry) error {
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM `+table+` WHERE id = $1)`, e.ID).Scan(&exists)
	if err != nil {
		return postgres.MapError(err, entity, e.ID)
	}
	if !exists {
		return postgres.MapError(pgx.ErrNoRows, entity, e.ID)
	}
	return postgres.ErrStaleVersion(entity, e.ID, e.Version)
}

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder) ([]*domain.GlossaryEntry, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var out []*domain.GlossaryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}

func scanEntry(row pgx.Row) (*domain.GlossaryEntry, error) {
	var (
		e            domain.GlossaryEntry
		explanations []byte
		suggestions  []byte
	)
	err := row.Scan(
		&e.ID, &e.Phrase, &e.PhraseNormalized, &e.Pinyin, &e.Category, &explanations,
		&e.Approved, &suggestions, &e.Version, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Explanations = map[string]string{}
	if len(explanations) > 0 {
		if err := json.Unmarshal(explanations, &e.Explanations); err != nil {
			return nil, fmt.Errorf("%s %s: unmarshal explanations: %w", entity, e.ID, err)
		}
	}
	if e.Suggestions, err = postgres.DecodeSuggestions(suggestions); err != nil {
		return nil, fmt.Errorf("%s %s: %w", entity, e.ID, err)
	}
	return &e, nil
}

func encode(e *domain.GlossaryEntry) (explanations, suggestions []byte, err error) {
	ex := e.Explanations
	if ex == nil {
		ex = map[string]string{}
	}
	if explanations, err = json.Marshal(ex); err != nil {
		return nil, nil, fmt.Errorf("%s %s: marshal explanations: %w", entity, e.ID, err)
	}
	if suggestions, err = postgres.EncodeSuggestions(e.Suggestions); err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", entity, e.ID, err)
	}
	return explanations, suggestions, nil
}
