package domain

import (
	"time"

	"github.com/google/uuid"
)

// Moderation is the moderation state shared by every moderated record.
type Moderation struct {
	Approved    bool
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int
	Suggestions []Suggestion
}

// FindSuggestion returns the index of the pending suggestion with the given
// handle, or -1.
func (m *Moderation) FindSuggestion(handle string) int {
	for i, s := range m.Suggestions {
		if s.Hash() == handle {
			return i
		}
	}
	return -1
}

// RemoveSuggestion removes the suggestion at index i, keeping the order of
// the rest.
func (m *Moderation) RemoveSuggestion(i int) {
	m.Suggestions = append(m.Suggestions[:i:i], m.Suggestions[i+1:]...)
}

// IsPending reports whether the record needs a moderator's attention.
func (m *Moderation) IsPending() bool {
	return !m.Approved || len(m.Suggestions) > 0
}

// Submission is a set of submitted field values for one edit.
// Fields missing from Values are left untouched. A nil value means NULL.
type Submission struct {
	Language string
	Values   map[Field]*string
}

// Str returns a pointer to s.
func Str(s string) *string {
	return &s
}

// RecordFilter narrows listings of moderated records.
type RecordFilter struct {
	// Query matches a substring of the record's title (phrase or dish name).
	Query string
	// OnlyApproved hides unapproved records except those created by Viewer.
	OnlyApproved bool
	Viewer       uuid.UUID
	Limit        int
	Offset       int
}
