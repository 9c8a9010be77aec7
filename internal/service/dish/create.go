package dish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/pkg/ctxutil"
)

// Create adds a dish with a single translation. Dishes created by privileged
// callers are approved immediately.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Dish, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sub := input.submission()
	dish := domain.NewDish(sub)
	s.engine.Init(dish, userID, ctxutil.IsPrivilegedCtx(ctx))

	lang := sub.Language
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.dishes.Create(txCtx, dish); err != nil {
			return fmt.Errorf("create dish: %w", err)
		}
		record := domain.NewAuditRecord(userID, domain.EntityTypeDish, dish.ID, domain.AuditActionCreate,
			map[string]any{"name": map[string]any{"new": dish.NameIn(lang), "language": lang}}, dish.CreatedAt)
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dish created",
		slog.String("user_id", userID.String()),
		slog.String("dish_id", dish.ID.String()),
		slog.Bool("approved", dish.Approved),
	)

	return dish, nil
}
