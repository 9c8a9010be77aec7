package glossary

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

// CreateInput holds the parameters for creating a glossary entry.
type CreateInput struct {
	Language    string
	Phrase      string
	Pinyin      *string
	Category    *string
	Explanation *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	phrase := strings.TrimSpace(i.Phrase)
	if phrase == "" {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: "required"})
	}
	if len(phrase) > 200 {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: "max 200 characters"})
	}
	if i.Explanation != nil && strings.TrimSpace(i.Language) == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required with explanation"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) submission() domain.Submission {
	values := map[domain.Field]*string{
		domain.FieldPhrase: domain.Str(strings.TrimSpace(i.Phrase)),
	}
	if i.Pinyin != nil {
		values[domain.FieldPinyin] = i.Pinyin
	}
	if i.Category != nil {
		values[domain.FieldCategory] = i.Category
	}
	if i.Explanation != nil {
		values[domain.FieldExplanation] = i.Explanation
	}
	return domain.Submission{Language: strings.TrimSpace(i.Language), Values: values}
}

// EditInput holds a proposed edit. Values maps field names to new values;
// a nil value clears the field.
type EditInput struct {
	ID       uuid.UUID
	Language string
	Values   map[domain.Field]*string
}

// Validate checks all fields and collects all errors.
func (i EditInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(i.Values) == 0 {
		errs = append(errs, domain.FieldError{Field: "values", Message: "at least one field must be provided"})
	}
	if v, ok := i.Values[domain.FieldPhrase]; ok && (v == nil || strings.TrimSpace(*v) == "") {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds listing parameters.
type ListInput struct {
	Query  string
	Limit  int
	Offset int
}

// EditResult reports the state after ProposeEdit.
type EditResult struct {
	Entry   *domain.GlossaryEntry
	Applied []domain.Field
	// Suggested holds the handles of newly queued suggestions.
	Suggested []string
}
