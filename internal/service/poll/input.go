package poll

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

// CreatePollInput holds the parameters for opening a poll. ContextID is the
// club meeting or event the poll decides on; one poll per context.
type CreatePollInput struct {
	ContextID uuid.UUID
	Club      domain.Club
	ClosesAt  time.Time
}

// CastBallotInput holds a member's vote.
type CastBallotInput struct {
	PollID   uuid.UUID
	ChoiceID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CastBallotInput) Validate() error {
	var errs []domain.FieldError
	if i.PollID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "poll_id", Message: "required"})
	}
	if i.ChoiceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "choice_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Results is the current standing of a poll.
type Results struct {
	Poll *domain.Poll
	// Winner is nil while no ballots have been cast.
	Winner *uuid.UUID
	Counts []domain.ChoiceCount
	Total  int
}
