package glossary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/pkg/ctxutil"
)

// Create adds a glossary entry. Entries created by privileged callers are
// approved immediately; others wait in the moderation queue.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.GlossaryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	privileged := ctxutil.IsPrivilegedCtx(ctx)
	entry := domain.NewGlossaryEntry(input.submission())
	s.engine.Init(entry, userID, privileged)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.entries.Create(txCtx, entry); err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		record := domain.NewAuditRecord(userID, domain.EntityTypeGlossary, entry.ID, domain.AuditActionCreate,
			map[string]any{"phrase": map[string]any{"new": entry.Phrase}}, entry.CreatedAt)
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "glossary entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.Bool("approved", entry.Approved),
	)

	return entry, nil
}
