package poll

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/voting"
)

// Get returns a poll by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	p, err := s.polls.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get poll: %w", err)
	}
	return p, nil
}

// GetByContext returns the poll attached to a context.
func (s *Service) GetByContext(ctx context.Context, contextID uuid.UUID) (*domain.Poll, error) {
	p, err := s.polls.GetByContextID(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("get poll by context: %w", err)
	}
	return p, nil
}

// Tally returns the winning choice, or nil when no ballots were cast.
func (s *Service) Tally(ctx context.Context, id uuid.UUID) (*uuid.UUID, error) {
	res, err := s.Results(ctx, id)
	if err != nil {
		return nil, err
	}
	return res.Winner, nil
}

// Results returns the per-choice counts and the current winner.
func (s *Service) Results(ctx context.Context, id uuid.UUID) (*Results, error) {
	p, err := s.polls.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get poll: %w", err)
	}
	ballots, err := s.ballots.ListByPoll(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list ballots: %w", err)
	}

	res := &Results{
		Poll:   p,
		Counts: voting.Results(ballots),
		Total:  len(ballots),
	}
	if winner, ok := voting.Tally(ballots); ok {
		res.Winner = &winner
	}
	return res, nil
}
