package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Voting errors. Each is a user-visible validation outcome; no state changes
// when one is returned.
var (
	ErrVotingClosed  = errors.New("voting is closed")
	ErrDuplicateVote = errors.New("member has already voted")
	ErrInvalidChoice = errors.New("invalid choice")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// SuggestionNotFoundError is returned when a suggestion handle does not match
// any pending suggestion of a record.
type SuggestionNotFoundError struct {
	Handle string
}

func (e *SuggestionNotFoundError) Error() string {
	return fmt.Sprintf("suggestion %s: not found", e.Handle)
}

func (e *SuggestionNotFoundError) Unwrap() error { return ErrNotFound }
