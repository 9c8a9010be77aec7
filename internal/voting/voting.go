// Package voting holds the poll rules: when ballots are accepted and how the
// winner is computed. It performs no I/O; ballot uniqueness is ultimately
// enforced by the store.
package voting

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

// NewPoll builds an open poll bound to contextID. The caller must make sure
// no poll exists for contextID yet.
func NewPoll(contextID uuid.UUID, club domain.Club, closesAt time.Time, actor uuid.UUID, now time.Time) (domain.Poll, error) {
	var errs []domain.FieldError
	if contextID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "context_id", Message: "required"})
	}
	if !club.IsValid() {
		errs = append(errs, domain.FieldError{Field: "club", Message: fmt.Sprintf("unknown club %q", club)})
	}
	if !closesAt.After(now) {
		errs = append(errs, domain.FieldError{Field: "closes_at", Message: "must be in the future"})
	}
	if len(errs) > 0 {
		return domain.Poll{}, domain.NewValidationErrors(errs)
	}

	return domain.Poll{
		ID:        uuid.New(),
		ContextID: contextID,
		Club:      club,
		ClosesAt:  closesAt.UTC(),
		CreatedAt: now.UTC(),
		CreatedBy: actor,
	}, nil
}

// CheckBallot decides whether a ballot may be cast. existing is the member's
// ballot in this poll, if any. Checks run in a fixed order: closed poll,
// duplicate vote, invalid choice.
func CheckBallot(poll *domain.Poll, now time.Time, existing *domain.Ballot, choiceValid bool) error {
	if !poll.IsOpen(now) {
		return fmt.Errorf("poll %s: %w", poll.ID, domain.ErrVotingClosed)
	}
	if existing != nil {
		return fmt.Errorf("poll %s member %s: %w", poll.ID, existing.MemberID, domain.ErrDuplicateVote)
	}
	if !choiceValid {
		return fmt.Errorf("poll %s: %w", poll.ID, domain.ErrInvalidChoice)
	}
	return nil
}

// NewBallot records member's vote for choice.
func NewBallot(poll *domain.Poll, choice, member uuid.UUID, now time.Time) domain.Ballot {
	return domain.Ballot{
		ID:        uuid.New(),
		PollID:    poll.ID,
		ChoiceID:  choice,
		MemberID:  member,
		CreatedAt: now.UTC(),
	}
}

// Close marks the poll closed. It reports whether the flag changed, so
// closing a closed poll is a no-op.
func Close(poll *domain.Poll) bool {
	if poll.IsClosed {
		return false
	}
	poll.IsClosed = true
	return true
}

// Tally returns the winning choice. ballots must be in the order they were
// cast. Ties go to the choice whose running count reached the final maximum
// first. The second result is false when there are no ballots.
func Tally(ballots []domain.Ballot) (uuid.UUID, bool) {
	if len(ballots) == 0 {
		return uuid.Nil, false
	}

	counts := make(map[uuid.UUID]int)
	maxVotes := 0
	for _, b := range ballots {
		counts[b.ChoiceID]++
		if counts[b.ChoiceID] > maxVotes {
			maxVotes = counts[b.ChoiceID]
		}
	}

	running := make(map[uuid.UUID]int, len(counts))
	for _, b := range ballots {
		running[b.ChoiceID]++
		if running[b.ChoiceID] == maxVotes {
			return b.ChoiceID, true
		}
	}
	// unreachable: some choice always reaches the maximum
	return uuid.Nil, false
}

// Results counts ballots per choice, ordered by first appearance.
func Results(ballots []domain.Ballot) []domain.ChoiceCount {
	idx := make(map[uuid.UUID]int)
	var out []domain.ChoiceCount
	for _, b := range ballots {
		i, ok := idx[b.ChoiceID]
		if !ok {
			i = len(out)
			idx[b.ChoiceID] = i
			out = append(out, domain.ChoiceCount{ChoiceID: b.ChoiceID})
		}
		out[i].Votes++
	}
	return out
}
