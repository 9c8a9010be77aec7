package poll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/voting"
)

// CreatePoll opens a poll for a context. A context that already has a poll
// yields ErrConflict.
func (s *Service) CreatePoll(ctx context.Context, input CreatePollInput) (*domain.Poll, error) {
	userID, err := manager(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if d := input.ClosesAt.Sub(now); d > 0 && (d < s.cfg.MinDuration || d > s.cfg.MaxDuration) {
		return nil, domain.NewValidationError("closes_at",
			fmt.Sprintf("poll must stay open between %s and %s", s.cfg.MinDuration, s.cfg.MaxDuration))
	}
	p, err := voting.NewPoll(input.ContextID, input.Club, input.ClosesAt, userID, now)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.polls.GetByContextID(txCtx, p.ContextID)
		switch {
		case err == nil:
			return fmt.Errorf("poll for context %s exists as %s: %w", p.ContextID, existing.ID, domain.ErrConflict)
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get poll by context: %w", err)
		}

		if err := s.polls.Create(txCtx, &p); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("poll for context %s: %w", p.ContextID, domain.ErrConflict)
			}
			return fmt.Errorf("create poll: %w", err)
		}

		record := domain.NewAuditRecord(userID, domain.EntityTypePoll, p.ID, domain.AuditActionCreate,
			map[string]any{
				"context_id": p.ContextID.String(),
				"club":       string(p.Club),
				"closes_at":  p.ClosesAt,
			}, now)
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "poll created",
		slog.String("user_id", userID.String()),
		slog.String("poll_id", p.ID.String()),
		slog.String("club", string(p.Club)),
		slog.Time("closes_at", p.ClosesAt),
	)

	return &p, nil
}
