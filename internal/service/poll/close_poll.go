package poll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/voting"
)

// ClosePoll stops accepting ballots. Closing a closed poll is a no-op.
func (s *Service) ClosePoll(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	userID, err := manager(ctx)
	if err != nil {
		return nil, err
	}

	var (
		p       *domain.Poll
		changed bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		p, err = s.polls.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get poll: %w", err)
		}
		if changed = voting.Close(p); !changed {
			return nil
		}

		if err := s.polls.Save(txCtx, p); err != nil {
			return fmt.Errorf("save poll: %w", err)
		}
		record := domain.NewAuditRecord(userID, domain.EntityTypePoll, p.ID, domain.AuditActionClose, nil, s.now().UTC())
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, "poll closed",
			slog.String("user_id", userID.String()),
			slog.String("poll_id", id.String()),
		)
	}
	return p, nil
}
