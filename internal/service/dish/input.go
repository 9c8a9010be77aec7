package dish

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

// CreateInput holds the parameters for creating a dish. Name, Description
// and Recipe belong to the Language translation.
type CreateInput struct {
	Language    string
	Name        string
	Origin      *string
	Description *string
	Recipe      *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Language) == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) submission() domain.Submission {
	values := map[domain.Field]*string{
		domain.FieldName: domain.Str(strings.TrimSpace(i.Name)),
	}
	for field, v := range map[domain.Field]*string{
		domain.FieldOrigin:      i.Origin,
		domain.FieldDescription: i.Description,
		domain.FieldRecipe:      i.Recipe,
	} {
		if v != nil {
			values[field] = v
		}
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
	if v, ok := i.Values[domain.FieldName]; ok && (v == nil || strings.TrimSpace(*v) == "") {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
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
	Dish    *domain.Dish
	Applied []domain.Field
	// Suggested holds the handles of newly queued suggestions.
	Suggested []string
}
