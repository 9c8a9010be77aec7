package domain

import (
	"strings"
)

// NormalizeText prepares a phrase for search and uniqueness checks:
// surrounding whitespace is trimmed, inner runs of whitespace become a single
// space and letters are lowercased. Tone marks and punctuation are kept.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
