package domain

import (
	"github.com/google/uuid"
)

// GlossaryEntry is a moderated glossary phrase with per-language explanations.
type GlossaryEntry struct {
	ID               uuid.UUID
	Phrase           string
	PhraseNormalized string
	Pinyin           *string
	Category         *string
	// Explanations maps a language code to the explanation in that language.
	Explanations map[string]string

	Moderation
}

// NewGlossaryEntry builds an unsaved entry from submitted values.
func NewGlossaryEntry(sub Submission) *GlossaryEntry {
	e := &GlossaryEntry{
		ID:           uuid.New(),
		Explanations: map[string]string{},
	}
	for _, f := range GlossarySchema {
		v, ok := sub.Values[f.Name]
		if !ok {
			continue
		}
		if f.Translatable && !e.HasTranslation(sub.Language) {
			e.AddTranslation(sub.Language)
		}
		e.SetValue(f.Name, sub.Language, v)
	}
	return e
}

func (e *GlossaryEntry) Schema() Schema { return GlossarySchema }

func (e *GlossaryEntry) State() *Moderation { return &e.Moderation }

func (e *GlossaryEntry) Value(field Field, lang string) *string {
	switch field {
	case FieldPhrase:
		v := e.Phrase
		return &v
	case FieldPinyin:
		return copyStr(e.Pinyin)
	case FieldCategory:
		return copyStr(e.Category)
	case FieldExplanation:
		if v, ok := e.Explanations[lang]; ok {
			return &v
		}
	}
	return nil
}

func (e *GlossaryEntry) SetValue(field Field, lang string, value *string) {
	switch field {
	case FieldPhrase:
		e.Phrase = deref(value)
		e.PhraseNormalized = NormalizeText(e.Phrase)
	case FieldPinyin:
		e.Pinyin = emptyToNil(value)
	case FieldCategory:
		e.Category = emptyToNil(value)
	case FieldExplanation:
		if e.Explanations == nil {
			e.Explanations = map[string]string{}
		}
		e.Explanations[lang] = deref(value)
	}
}

func (e *GlossaryEntry) HasTranslation(lang string) bool {
	_, ok := e.Explanations[lang]
	return ok
}

func (e *GlossaryEntry) AddTranslation(lang string) {
	if e.Explanations == nil {
		e.Explanations = map[string]string{}
	}
	if _, ok := e.Explanations[lang]; !ok {
		e.Explanations[lang] = ""
	}
}

func copyStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
