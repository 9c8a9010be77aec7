package dish

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

// Get returns a dish. Unapproved dishes are visible only to their author and
// to moderators.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	dish, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get dish: %w", err)
	}
	if !visible(ctx, &dish.Moderation) {
		return nil, fmt.Errorf("dish %s: %w", id, domain.ErrNotFound)
	}
	return dish, nil
}

// List returns dishes matching input, most liked first. Unprivileged callers
// see approved dishes plus their own.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Dish, error) {
	viewer, _ := ctxutil.UserIDFromCtx(ctx)
	dishes, err := s.dishes.List(ctx, domain.RecordFilter{
		Query:        input.Query,
		OnlyApproved: !ctxutil.IsPrivilegedCtx(ctx),
		Viewer:       viewer,
		Limit:        clampLimit(input.Limit, maxListLimit, defaultListLimit),
		Offset:       max(input.Offset, 0),
	})
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return dishes, nil
}

// PendingQueue returns dishes that are unapproved or carry suggestions,
// oldest first.
func (s *Service) PendingQueue(ctx context.Context, limit int) ([]*domain.Dish, error) {
	if _, err := moderator(ctx); err != nil {
		return nil, err
	}
	dishes, err := s.dishes.ListPending(ctx, clampLimit(limit, s.cfg.QueueLimit, s.cfg.QueueLimit))
	if err != nil {
		return nil, fmt.Errorf("list pending dishes: %w", err)
	}
	return dishes, nil
}

func visible(ctx context.Context, st *domain.Moderation) bool {
	if st.Approved || ctxutil.IsPrivilegedCtx(ctx) {
		return true
	}
	viewer, ok := ctxutil.UserIDFromCtx(ctx)
	return ok && viewer == st.CreatedBy
}
