package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Suggestion is a pending, unapplied edit to one field of a moderated record.
// Suggestions are values: they are never mutated, only appended and removed.
// They are addressed by Hash, not by a row id.
type Suggestion struct {
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	Field     Field     `json:"field"`
	Language  string    `json:"language,omitempty"`
	Value     string    `json:"value"`
}

// Hash returns the suggestion handle: the hex SHA-256 digest of the JSON
// array [created_by, created_at, field, language|null, value].
// Suggestions with identical attributes share a handle.
func (s Suggestion) Hash() string {
	var lang any
	if s.Language != "" {
		lang = s.Language
	}

	tuple := []any{
		s.CreatedBy.String(),
		s.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(s.Field),
		lang,
		s.Value,
	}

	// Marshalling strings and nil cannot fail.
	b, _ := json.Marshal(tuple)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// IsSuggestionHandle reports whether s looks like a suggestion handle.
func IsSuggestionHandle(s string) bool {
	if len(s) != sha256.Size*2 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
