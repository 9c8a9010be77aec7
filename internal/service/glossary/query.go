package glossary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/pkg/ctxutil"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Get returns an entry. Unapproved entries are visible only to their author
// and to moderators.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.GlossaryEntry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if !visible(ctx, &entry.Moderation) {
		return nil, fmt.Errorf("glossary_entry %s: %w", id, domain.ErrNotFound)
	}
	return entry, nil
}

// List returns entries matching input. Unprivileged callers see approved
// entries plus their own.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.GlossaryEntry, error) {
	viewer, _ := ctxutil.UserIDFromCtx(ctx)
	entries, err := s.entries.List(ctx, domain.RecordFilter{
		Query:        input.Query,
		OnlyApproved: !ctxutil.IsPrivilegedCtx(ctx),
		Viewer:       viewer,
		Limit:        clampLimit(input.Limit, maxListLimit, defaultListLimit),
		Offset:       max(input.Offset, 0),
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// PendingQueue returns entries that are unapproved or carry suggestions,
// oldest first.
func (s *Service) PendingQueue(ctx context.Context, limit int) ([]*domain.GlossaryEntry, error) {
	if _, err := moderator(ctx); err != nil {
		return nil, err
	}
	entries, err := s.entries.ListPending(ctx, clampLimit(limit, s.cfg.QueueLimit, s.cfg.QueueLimit))
	if err != nil {
		return nil, fmt.Errorf("list pending entries: %w", err)
	}
	return entries, nil
}

func visible(ctx context.Context, st *domain.Moderation) bool {
	if st.Approved || ctxutil.IsPrivilegedCtx(ctx) {
		return true
	}
	viewer, ok := ctxutil.UserIDFromCtx(ctx)
	return ok && viewer == st.CreatedBy
}
