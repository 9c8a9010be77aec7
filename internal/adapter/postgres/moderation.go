package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

// EncodeSuggestions serializes the suggestion list for a JSONB column.
// A nil list is stored as an empty array.
func EncodeSuggestions(s []domain.Suggestion) ([]byte, error) {
	if s == nil {
		s = []domain.Suggestion{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal suggestions: %w", err)
	}
	return b, nil
}

// DecodeSuggestions parses a JSONB suggestion list. Order is preserved.
func DecodeSuggestions(b []byte) ([]domain.Suggestion, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var s []domain.Suggestion
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("unmarshal suggestions: %w", err)
	}
	if len(s) == 0 {
		return nil, nil
	}
	return s, nil
}

// PendingPredicate selects records that need a moderator: unapproved ones and
// those with queued suggestions.
const PendingPredicate = "(NOT approved OR jsonb_array_length(suggestions) > 0)"
