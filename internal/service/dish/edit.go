package dish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/pkg/ctxutil"
)

// ProposeEdit applies the edit directly for privileged callers and queues it
// as suggestions otherwise. Editing a translation that does not exist yet
// creates it (privileged) or suggests its fields (unprivileged).
func (s *Service) ProposeEdit(ctx context.Context, input EditInput) (*EditResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	privileged := ctxutil.IsPrivilegedCtx(ctx)
	sub := domain.Submission{Language: input.Language, Values: input.Values}

	result := &EditResult{}
	dish, err := s.mutate(ctx, input.ID, userID, func(d *domain.Dish) (domain.AuditAction, map[string]any, error) {
		if !visible(ctx, &d.Moderation) {
			return "", nil, fmt.Errorf("dish %s: %w", d.ID, domain.ErrNotFound)
		}

		outcome, err := s.engine.ProposeEdit(d, sub, userID, privileged)
		if err != nil {
			return "", nil, err
		}
		if len(outcome.Suggested) > 0 && len(d.Suggestions) > s.cfg.MaxPendingPerRecord {
			return "", nil, domain.NewValidationError("suggestions",
				fmt.Sprintf("too many pending suggestions (max %d)", s.cfg.MaxPendingPerRecord))
		}

		result.Applied = outcome.Applied
		result.Suggested = result.Suggested[:0]
		for _, sg := range outcome.Suggested {
			result.Suggested = append(result.Suggested, sg.Hash())
		}

		switch {
		case len(outcome.Applied) > 0:
			changes := make(map[string]any, len(outcome.Applied))
			for _, f := range outcome.Applied {
				changes[string(f)] = map[string]any{"new": sub.Values[f], "language": sub.Language}
			}
			return domain.AuditActionUpdate, changes, nil
		case len(outcome.Suggested) > 0:
			return domain.AuditActionSuggest, map[string]any{"suggestions": result.Suggested}, nil
		}
		return "", nil, nil
	})
	if err != nil {
		return nil, err
	}
	result.Dish = dish

	s.metrics.Edits(kind, len(result.Applied), len(result.Suggested))
	s.log.InfoContext(ctx, "dish edit proposed",
		slog.String("user_id", userID.String()),
		slog.String("dish_id", dish.ID.String()),
		slog.String("language", input.Language),
		slog.Int("applied", len(result.Applied)),
		slog.Int("suggested", len(result.Suggested)),
	)

	return result, nil
}
