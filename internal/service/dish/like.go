package dish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/pkg/ctxutil"
)

// Like atomically adds one like and returns the new total. Dishes the caller
// cannot see yield ErrNotFound. Likes bypass the version check and are not
// audited.
func (s *Service) Like(ctx context.Context, id uuid.UUID) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	var likes int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.dishes.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get dish: %w", err)
		}
		if !visible(ctx, &d.Moderation) {
			return fmt.Errorf("dish %s: %w", id, domain.ErrNotFound)
		}

		likes, err = s.dishes.IncrementLikes(txCtx, id)
		if err != nil {
			return fmt.Errorf("like dish: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.metrics.Like()
	s.log.DebugContext(ctx, "dish liked",
		slog.String("user_id", userID.String()),
		slog.String("dish_id", id.String()),
		slog.Int64("likes", likes),
	)
	return likes, nil
}
