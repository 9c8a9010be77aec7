package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:          uuid.New(),
		DisplayName: "member-" + uniqueSuffix(),
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, display_name, role, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.DisplayName, string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedCandidate inserts a candidate for club.
func SeedCandidate(t *testing.T, pool *pgxpool.Pool, club domain.Club) domain.Candidate {
	t.Helper()

	c := domain.Candidate{
		ID:          uuid.New(),
		Club:        club,
		Title:       "Title " + uniqueSuffix(),
		SuggestedBy: uuid.New(),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO candidates (id, club, title, suggested_by, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, string(c.Club), c.Title, c.SuggestedBy, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCandidate: %v", err)
	}
	return c
}

// SeedPoll inserts an open poll for club closing in one day.
func SeedPoll(t *testing.T, pool *pgxpool.Pool, club domain.Club) domain.Poll {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Poll{
		ID:        uuid.New(),
		ContextID: uuid.New(),
		Club:      club,
		ClosesAt:  now.Add(24 * time.Hour),
		CreatedBy: uuid.New(),
		CreatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO polls (id, context_id, club, closes_at, is_closed, created_by, created_at)
		 VALUES ($1, $2, $3, $4, false, $5, $6)`,
		p.ID, p.ContextID, string(p.Club), p.ClosesAt, p.CreatedBy, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPoll: %v", err)
	}
	return p
}
