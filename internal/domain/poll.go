package domain

import (
	"time"

	"github.com/google/uuid"
)

// Poll is a film or book club vote bound to an external context (an event).
type Poll struct {
	ID        uuid.UUID
	ContextID uuid.UUID
	Club      Club
	ClosesAt  time.Time
	IsClosed  bool
	CreatedAt time.Time
	CreatedBy uuid.UUID
}

// IsOpen reports whether ballots are accepted at now. A poll closes either
// explicitly or once its deadline has passed.
func (p *Poll) IsOpen(now time.Time) bool {
	return !p.IsClosed && p.ClosesAt.After(now)
}

// Ballot is one member's vote within a poll.
type Ballot struct {
	ID        uuid.UUID
	PollID    uuid.UUID
	ChoiceID  uuid.UUID
	MemberID  uuid.UUID
	CreatedAt time.Time
}

// ChoiceCount is the number of ballots cast for one choice.
type ChoiceCount struct {
	ChoiceID uuid.UUID
	Votes    int
}

// Candidate is a film or book that can be chosen in a club poll.
type Candidate struct {
	ID          uuid.UUID
	Club        Club
	Title       string
	Creator     *string // director or author
	Year        *int
	SuggestedBy uuid.UUID
	CreatedAt   time.Time
}
