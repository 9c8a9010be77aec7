package glossary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/pkg/ctxutil"
)

// ProposeEdit applies the edit directly for privileged callers and queues it
// as suggestions otherwise.
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
	entry, err := s.mutate(ctx, input.ID, userID, func(e *domain.GlossaryEntry) (domain.AuditAction, map[string]any, error) {
		if !visible(ctx, &e.Moderation) {
			return "", nil, fmt.Errorf("glossary_entry %s: %w", e.ID, domain.ErrNotFound)
		}

		outcome, err := s.engine.ProposeEdit(e, sub, userID, privileged)
		if err != nil {
			return "", nil, err
		}
		if len(outcome.Suggested) > 0 && len(e.Suggestions) > s.cfg.MaxPendingPerRecord {
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
			return domain.AuditActionUpdate, fieldChanges(outcome.Applied, sub), nil
		case len(outcome.Suggested) > 0:
			return domain.AuditActionSuggest, map[string]any{"suggestions": result.Suggested}, nil
		}
		return "", nil, nil
	})
	if err != nil {
		return nil, err
	}
	result.Entry = entry

	s.metrics.Edits(kind, len(result.Applied), len(result.Suggested))
	s.log.InfoContext(ctx, "glossary edit proposed",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.Int("applied", len(result.Applied)),
		slog.Int("suggested", len(result.Suggested)),
	)

	return result, nil
}

func fieldChanges(fields []domain.Field, sub domain.Submission) map[string]any {
	changes := make(map[string]any, len(fields))
	for _, f := range fields {
		changes[string(f)] = map[string]any{"new": sub.Values[f], "language": sub.Language}
	}
	return changes
}
