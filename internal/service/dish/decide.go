package dish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

// ApplySuggestion writes a pending suggestion onto the dish, creating the
// suggestion's translation when missing, and returns the number of
// suggestions still pending.
func (s *Service) ApplySuggestion(ctx context.Context, id uuid.UUID, handle string) (int, error) {
	return s.resolve(ctx, id, handle, true)
}

// DenySuggestion discards a pending suggestion and returns the number of
// suggestions still pending.
func (s *Service) DenySuggestion(ctx context.Context, id uuid.UUID, handle string) (int, error) {
	return s.resolve(ctx, id, handle, false)
}

func (s *Service) resolve(ctx context.Context, id uuid.UUID, handle string, apply bool) (int, error) {
	userID, err := moderator(ctx)
	if err != nil {
		return 0, err
	}
	if !domain.IsSuggestionHandle(handle) {
		return 0, domain.NewValidationError("hash", "must be 64 lower-case hex characters")
	}

	action := domain.AuditActionDeny
	if apply {
		action = domain.AuditActionApply
	}

	var remaining int
	_, err = s.mutate(ctx, id, userID, func(d *domain.Dish) (domain.AuditAction, map[string]any, error) {
		i := d.FindSuggestion(handle)
		if i < 0 {
			return "", nil, &domain.SuggestionNotFoundError{Handle: handle}
		}
		sg := d.Suggestions[i]

		var err error
		if apply {
			remaining, err = s.engine.ApplySuggestion(d, handle)
		} else {
			remaining, err = s.engine.DenySuggestion(d, handle)
		}
		if err != nil {
			return "", nil, err
		}
		return action, map[string]any{
			"hash":     handle,
			"field":    string(sg.Field),
			"language": sg.Language,
			"value":    sg.Value,
			"author":   sg.CreatedBy.String(),
		}, nil
	})
	if err != nil {
		return 0, err
	}

	s.metrics.Decision(kind, string(action))
	s.log.InfoContext(ctx, "dish suggestion resolved",
		slog.String("user_id", userID.String()),
		slog.String("dish_id", id.String()),
		slog.String("action", string(action)),
		slog.Int("remaining", remaining),
	)

	return remaining, nil
}

// Approve makes a new dish publicly visible. Approving an approved dish
// succeeds without changes.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	userID, err := moderator(ctx)
	if err != nil {
		return nil, err
	}

	var changed bool
	dish, err := s.mutate(ctx, id, userID, func(d *domain.Dish) (domain.AuditAction, map[string]any, error) {
		changed = !d.Approved
		if !changed {
			return "", nil, nil
		}
		s.engine.ApproveNew(d)
		return domain.AuditActionApprove, nil, nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return dish, nil
	}

	s.metrics.Decision(kind, string(domain.AuditActionApprove))
	s.log.InfoContext(ctx, "dish approved",
		slog.String("user_id", userID.String()),
		slog.String("dish_id", id.String()),
	)
	return dish, nil
}

// Reject deletes an unapproved dish. Approved dishes yield ErrConflict.
func (s *Service) Reject(ctx context.Context, id uuid.UUID) error {
	userID, err := moderator(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.dishes.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get dish: %w", err)
		}
		if err := s.engine.RejectNew(d); err != nil {
			return fmt.Errorf("dish %s: %w", id, err)
		}
		if err := s.dishes.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete dish: %w", err)
		}
		record := domain.NewAuditRecord(userID, domain.EntityTypeDish, id, domain.AuditActionDelete,
			map[string]any{"translations": len(d.Translations)}, s.engine.Now())
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.Decision(kind, "reject")
	s.log.InfoContext(ctx, "dish rejected",
		slog.String("user_id", userID.String()),
		slog.String("dish_id", id.String()),
	)
	return nil
}
