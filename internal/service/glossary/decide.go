package glossary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

// ApplySuggestion writes a pending suggestion onto the entry and returns the
// number of suggestions still pending.
func (s *Service) ApplySuggestion(ctx context.Context, id uuid.UUID, handle string) (int, error) {
	return s.resolve(ctx, id, handle, domain.AuditActionApply)
}

// DenySuggestion discards a pending suggestion and returns the number of
// suggestions still pending.
func (s *Service) DenySuggestion(ctx context.Context, id uuid.UUID, handle string) (int, error) {
	return s.resolve(ctx, id, handle, domain.AuditActionDeny)
}

func (s *Service) resolve(ctx context.Context, id uuid.UUID, handle string, action domain.AuditAction) (int, error) {
	userID, err := moderator(ctx)
	if err != nil {
		return 0, err
	}
	if !domain.IsSuggestionHandle(handle) {
		return 0, domain.NewValidationError("hash", "must be 64 lower-case hex characters")
	}

	var remaining int
	_, err = s.mutate(ctx, id, userID, func(e *domain.GlossaryEntry) (domain.AuditAction, map[string]any, error) {
		i := e.FindSuggestion(handle)
		if i < 0 {
			return "", nil, &domain.SuggestionNotFoundError{Handle: handle}
		}
		sg := e.Suggestions[i]

		var err error
		if action == domain.AuditActionApply {
			remaining, err = s.engine.ApplySuggestion(e, handle)
		} else {
			remaining, err = s.engine.DenySuggestion(e, handle)
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
	s.log.InfoContext(ctx, "glossary suggestion resolved",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", id.String()),
		slog.String("action", string(action)),
		slog.Int("remaining", remaining),
	)

	return remaining, nil
}

// Approve makes a new entry publicly visible. Approving an approved entry
// succeeds without changes.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.GlossaryEntry, error) {
	userID, err := moderator(ctx)
	if err != nil {
		return nil, err
	}

	var changed bool
	entry, err := s.mutate(ctx, id, userID, func(e *domain.GlossaryEntry) (domain.AuditAction, map[string]any, error) {
		changed = !e.Approved
		if !changed {
			return "", nil, nil
		}
		s.engine.ApproveNew(e)
		return domain.AuditActionApprove, nil, nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return entry, nil
	}

	s.metrics.Decision(kind, string(domain.AuditActionApprove))
	s.log.InfoContext(ctx, "glossary entry approved",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", id.String()),
	)
	return entry, nil
}

// Reject deletes an unapproved entry. Approved entries yield ErrConflict.
func (s *Service) Reject(ctx context.Context, id uuid.UUID) error {
	userID, err := moderator(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		e, err := s.entries.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}
		if err := s.engine.RejectNew(e); err != nil {
			return fmt.Errorf("glossary_entry %s: %w", id, err)
		}
		if err := s.entries.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}
		record := domain.NewAuditRecord(userID, domain.EntityTypeGlossary, id, domain.AuditActionDelete,
			map[string]any{"phrase": map[string]any{"old": e.Phrase}}, s.engine.Now())
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.Decision(kind, "reject")
	s.log.InfoContext(ctx, "glossary entry rejected",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", id.String()),
	)
	return nil
}
