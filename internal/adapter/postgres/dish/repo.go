// Package dish implements the dish repository using PostgreSQL.
package dish

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
	table  = "dishes"
	entity = "dish"
)

var columns = []string{
	"id", "origin", "translations", "likes", "approved", "suggestions",
	"version", "created_by", "created_at", "updated_at",
}

// Repo provides dish persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dish repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a dish by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	d, err := scanDish(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// List returns dishes, most liked first.
func (r *Repo) List(ctx context.Context, f domain.RecordFilter) ([]*domain.Dish, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("likes DESC", "created_at", "id")

	if f.Query != "" {
		b = b.Where(
			"EXISTS (SELECT 1 FROM jsonb_each(translations) t WHERE t.value->>'name' ILIKE ?)",
			"%"+postgres.EscapeLike(f.Query)+"%",
		)
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

// ListPending returns dishes awaiting moderation, oldest first.
func (r *Repo) ListPending(ctx context.Context, limit int) ([]*domain.Dish, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(postgres.PendingPredicate).
		OrderBy("created_at", "id").
		Limit(uint64(limit))

	return r.query(ctx, b)
}

// Create inserts a new dish at version 1 with zero likes.
func (r *Repo) Create(ctx context.Context, d *domain.Dish) error {
	translations, suggestions, err := encode(d)
	if err != nil {
		return err
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			d.ID, d.Origin, translations, 0, d.Approved, suggestions,
			1, d.CreatedBy, d.CreatedAt, d.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, d.ID)
	}
	d.Version = 1
	d.Likes = 0
	return nil
}

// Save writes the moderated fields if the stored version still equals
// d.Version, then bumps the version. Likes are not written: they change only
// through IncrementLikes.
func (r *Repo) Save(ctx context.Context, d *domain.Dish) error {
	translations, suggestions, err := encode(d)
	if err != nil {
		return err
	}

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"origin":       d.Origin,
			"translations": translations,
			"approved":     d.Approved,
			"suggestions":  suggestions,
			"updated_at":   d.UpdatedAt,
			"version":      sq.Expr("version + 1"),
		}).
		Where(sq.Eq{"id": d.ID, "version": d.Version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, d.ID)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM dishes WHERE id = $1)`, d.ID).Scan(&exists); err != nil {
			return postgres.MapError(err, entity, d.ID)
		}
		if !exists {
			return postgres.MapError(pgx.ErrNoRows, entity, d.ID)
		}
		return postgres.ErrStaleVersion(entity, d.ID, d.Version)
	}

	d.Version++
	return nil
}

// IncrementLikes atomically adds one like and returns the new count.
func (r *Repo) IncrementLikes(ctx context.Context, id uuid.UUID) (int64, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("likes", sq.Expr("likes + 1")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING likes").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var likes int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&likes); err != nil {
		return 0, postgres.MapError(err, entity, id)
	}
	return likes, nil
}

// Delete removes a dish.
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

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder) ([]*domain.Dish, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var out []*domain.Dish
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}

func scanDish(row pgx.Row) (*domain.Dish, error) {
	var (
		d            domain.Dish
		translations []byte
		suggestions  []byte
	)
	err := row.Scan(
		&d.ID, &d.Origin, &translations, &d.Likes, &d.Approved, &suggestions,
		&d.Version, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Translations = map[string]domain.DishTranslation{}
	if len(translations) > 0 {
		if err := json.Unmarshal(translations, &d.Translations); err != nil {
			return nil, fmt.Errorf("%s %s: unmarshal translations: %w", entity, d.ID, err)
		}
	}
	if d.Suggestions, err = postgres.DecodeSuggestions(suggestions); err != nil {
		return nil, fmt.Errorf("%s %s: %w", entity, d.ID, err)
	}
	return &d, nil
}

func encode(d *domain.Dish) (translations, suggestions []byte, err error) {
	tr := d.Translations
	if tr == nil {
		tr = map[string]domain.DishTranslation{}
	}
	if translations, err = json.Marshal(tr); err != nil {
		return nil, nil, fmt.Errorf("%s %s: marshal translations: %w", entity, d.ID, err)
	}
	if suggestions, err = postgres.EncodeSuggestions(d.Suggestions); err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", entity, d.ID, err)
	}
	return translations, suggestions, nil
}
