package poll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/voting"
	"github.com/heartmarshall/clubhouse-backend/pkg/ctxutil"
)

// CastBallot records the caller's vote. Only one ballot per member and poll
// is accepted; the store's unique index backs the in-transaction check.
func (s *Service) CastBallot(ctx context.Context, input CastBallotInput) (*domain.Ballot, error) {
	memberID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		ballot domain.Ballot
		club   domain.Club
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.polls.GetByID(txCtx, input.PollID)
		if err != nil {
			return fmt.Errorf("get poll: %w", err)
		}
		club = p.Club

		existing, err := s.ballots.FindByPollAndMember(txCtx, p.ID, memberID)
		if err != nil {
			return fmt.Errorf("find ballot: %w", err)
		}
		valid, err := s.candidates.Exists(txCtx, input.ChoiceID, p.Club)
		if err != nil {
			return fmt.Errorf("check choice: %w", err)
		}

		now := s.now().UTC()
		if err := voting.CheckBallot(p, now, existing, valid); err != nil {
			return err
		}

		ballot = voting.NewBallot(p, input.ChoiceID, memberID, now)
		if err := s.ballots.Create(txCtx, &ballot); err != nil {
			switch {
			case errors.Is(err, domain.ErrAlreadyExists):
				return fmt.Errorf("poll %s member %s: %w", p.ID, memberID, domain.ErrDuplicateVote)
			case errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("poll %s: %w", p.ID, domain.ErrInvalidChoice)
			}
			return fmt.Errorf("create ballot: %w", err)
		}

		record := domain.NewAuditRecord(memberID, domain.EntityTypeBallot, ballot.ID, domain.AuditActionVote,
			map[string]any{"poll_id": p.ID.String(), "choice_id": input.ChoiceID.String()}, now)
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		if club != "" {
			s.metrics.Ballot(string(club), ballotResult(err))
		}
		return nil, err
	}

	s.metrics.Ballot(string(club), "accepted")
	s.log.InfoContext(ctx, "ballot cast",
		slog.String("user_id", memberID.String()),
		slog.String("poll_id", input.PollID.String()),
		slog.String("ballot_id", ballot.ID.String()),
	)

	return &ballot, nil
}

func ballotResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrVotingClosed):
		return "voting_closed"
	case errors.Is(err, domain.ErrDuplicateVote):
		return "duplicate_vote"
	case errors.Is(err, domain.ErrInvalidChoice):
		return "invalid_choice"
	default:
		return "error"
	}
}
