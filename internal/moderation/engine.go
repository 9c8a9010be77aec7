// Package moderation decides whether edits to moderated records are applied
// directly or queued as suggestions, and resolves queued suggestions.
//
// The engine performs no I/O. Callers load a record, call one operation and
// persist the record afterwards.
package moderation

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

// Record is a moderated record: a bag of schema-described fields plus the
// shared moderation state.
type Record interface {
	Schema() domain.Schema
	State() *domain.Moderation
	// Value returns the current value of field in lang, nil meaning NULL.
	// lang is ignored for language-neutral fields.
	Value(field domain.Field, lang string) *string
	SetValue(field domain.Field, lang string, value *string)
	HasTranslation(lang string) bool
	// AddTranslation creates an empty translation for lang.
	AddTranslation(lang string)
}

// Engine implements the suggestion and approval workflow.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for suggestion timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the engine's current time in UTC. Services stamp audit
// records with it so that records and their audit trail share one clock.
func (e *Engine) Now() time.Time {
	return e.now().UTC()
}

// Outcome reports what ProposeEdit did.
type Outcome struct {
	Applied   []domain.Field
	Suggested []domain.Suggestion
}

// Changed reports whether the record was modified.
func (o Outcome) Changed() bool {
	return len(o.Applied) > 0 || len(o.Suggested) > 0
}

// ProposeEdit compares the submitted values with the record and, for every
// differing field in schema order, either overwrites it (privileged) or
// appends a suggestion (unprivileged). Unprivileged edits never touch live
// fields. A suggestion identical to one already pending is not added twice.
func (e *Engine) ProposeEdit(rec Record, sub domain.Submission, actor uuid.UUID, privileged bool) (Outcome, error) {
	schema := rec.Schema()
	if err := validateSubmission(schema, sub); err != nil {
		return Outcome{}, err
	}

	var (
		out   Outcome
		st    = rec.State()
		now   = e.now().UTC()
		known = map[string]struct{}{}
	)
	for _, s := range st.Suggestions {
		known[s.Hash()] = struct{}{}
	}

	for _, spec := range schema {
		submitted, ok := sub.Values[spec.Name]
		if !ok {
			continue
		}

		lang := ""
		if spec.Translatable {
			lang = sub.Language
		}
		if !differs(spec, rec.Value(spec.Name, lang), submitted) {
			continue
		}

		if privileged {
			if spec.Translatable && !rec.HasTranslation(lang) {
				rec.AddTranslation(lang)
			}
			rec.SetValue(spec.Name, lang, submitted)
			out.Applied = append(out.Applied, spec.Name)
			continue
		}

		s := domain.Suggestion{
			CreatedBy: actor,
			CreatedAt: now,
			Field:     spec.Name,
			Language:  lang,
			Value:     deref(submitted),
		}
		h := s.Hash()
		if _, dup := known[h]; dup {
			continue
		}
		known[h] = struct{}{}
		st.Suggestions = append(st.Suggestions, s)
		out.Suggested = append(out.Suggested, s)
	}

	if out.Changed() {
		st.UpdatedAt = now
	}
	return out, nil
}

// Init prepares a freshly built record for its first save. Records created by
// privileged actors are approved immediately.
func (e *Engine) Init(rec Record, actor uuid.UUID, privileged bool) {
	now := e.now().UTC()
	st := rec.State()
	st.Approved = privileged
	st.CreatedBy = actor
	st.CreatedAt = now
	st.UpdatedAt = now
	st.Suggestions = nil
}

// ApplySuggestion writes the suggested value onto the record, creating a
// missing translation first, and removes the suggestion. It returns the number
// of suggestions still pending.
func (e *Engine) ApplySuggestion(rec Record, handle string) (int, error) {
	st := rec.State()
	i := st.FindSuggestion(handle)
	if i < 0 {
		return 0, &domain.SuggestionNotFoundError{Handle: handle}
	}

	s := st.Suggestions[i]
	spec, ok := rec.Schema().Lookup(s.Field)
	if !ok {
		return 0, domain.NewValidationError(string(s.Field), "unknown field")
	}

	if spec.Translatable && !rec.HasTranslation(s.Language) {
		rec.AddTranslation(s.Language)
	}
	value := s.Value
	rec.SetValue(s.Field, s.Language, &value)

	st.RemoveSuggestion(i)
	st.UpdatedAt = e.now().UTC()
	return len(st.Suggestions), nil
}

// DenySuggestion removes the suggestion without applying it and returns the
// number of suggestions still pending.
func (e *Engine) DenySuggestion(rec Record, handle string) (int, error) {
	st := rec.State()
	i := st.FindSuggestion(handle)
	if i < 0 {
		return 0, &domain.SuggestionNotFoundError{Handle: handle}
	}

	st.RemoveSuggestion(i)
	st.UpdatedAt = e.now().UTC()
	return len(st.Suggestions), nil
}

// ApproveNew makes the record publicly visible. Approving an approved record
// is a no-op.
func (e *Engine) ApproveNew(rec Record) {
	st := rec.State()
	if st.Approved {
		return
	}
	st.Approved = true
	st.UpdatedAt = e.now().UTC()
}

// RejectNew checks that the record may be discarded. Approved records cannot
// be rejected. The caller deletes the record on success.
func (e *Engine) RejectNew(rec Record) error {
	if rec.State().Approved {
		return fmt.Errorf("reject approved record: %w", domain.ErrConflict)
	}
	return nil
}

func validateSubmission(schema domain.Schema, sub domain.Submission) error {
	var errs []domain.FieldError
	for name := range sub.Values {
		spec, ok := schema.Lookup(name)
		switch {
		case !ok:
			errs = append(errs, domain.FieldError{Field: string(name), Message: "unknown field"})
		case spec.Translatable && sub.Language == "":
			errs = append(errs, domain.FieldError{Field: "language", Message: fmt.Sprintf("required for %s", name)})
		}
	}
	if len(errs) == 0 {
		return nil
	}

	sort.Slice(errs, func(i, j int) bool {
		if errs[i].Field != errs[j].Field {
			return errs[i].Field < errs[j].Field
		}
		return errs[i].Message < errs[j].Message
	})
	return domain.NewValidationErrors(errs)
}

// differs reports whether submitted changes the stored value. NULL and ""
// compare equal for fields that do not distinguish them.
func differs(spec domain.FieldSpec, current, submitted *string) bool {
	if spec.NullEqualsEmpty {
		return deref(current) != deref(submitted)
	}
	if current == nil || submitted == nil {
		return current != submitted
	}
	return *current != *submitted
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
