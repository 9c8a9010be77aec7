package domain

import (
	"github.com/google/uuid"
)

// Dish is a moderated dish with per-language name, description and recipe.
type Dish struct {
	ID           uuid.UUID
	Origin       *string
	Likes        int64
	Translations map[string]DishTranslation

	Moderation
}

// DishTranslation holds the translatable fields of a dish in one language.
type DishTranslation struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Recipe      *string `json:"recipe,omitempty"`
}

// NewDish builds an unsaved dish from submitted values.
func NewDish(sub Submission) *Dish {
	d := &Dish{
		ID:           uuid.New(),
		Translations: map[string]DishTranslation{},
	}
	for _, f := range DishSchema {
		v, ok := sub.Values[f.Name]
		if !ok {
			continue
		}
		if f.Translatable && !d.HasTranslation(sub.Language) {
			d.AddTranslation(sub.Language)
		}
		d.SetValue(f.Name, sub.Language, v)
	}
	return d
}

// NameIn returns the dish name in lang, or "" when untranslated.
func (d *Dish) NameIn(lang string) string {
	return d.Translations[lang].Name
}

func (d *Dish) Schema() Schema { return DishSchema }

func (d *Dish) State() *Moderation { return &d.Moderation }

func (d *Dish) Value(field Field, lang string) *string {
	if field == FieldOrigin {
		return copyStr(d.Origin)
	}

	tr, ok := d.Translations[lang]
	if !ok {
		return nil
	}
	switch field {
	case FieldName:
		v := tr.Name
		return &v
	case FieldDescription:
		return copyStr(tr.Description)
	case FieldRecipe:
		return copyStr(tr.Recipe)
	}
	return nil
}

func (d *Dish) SetValue(field Field, lang string, value *string) {
	if field == FieldOrigin {
		d.Origin = emptyToNil(value)
		return
	}

	if d.Translations == nil {
		d.Translations = map[string]DishTranslation{}
	}
	tr := d.Translations[lang]
	switch field {
	case FieldName:
		tr.Name = deref(value)
	case FieldDescription:
		tr.Description = emptyToNil(value)
	case FieldRecipe:
		tr.Recipe = emptyToNil(value)
	default:
		return
	}
	d.Translations[lang] = tr
}

func (d *Dish) HasTranslation(lang string) bool {
	_, ok := d.Translations[lang]
	return ok
}

func (d *Dish) AddTranslation(lang string) {
	if d.Translations == nil {
		d.Translations = map[string]DishTranslation{}
	}
	if _, ok := d.Translations[lang]; !ok {
		d.Translations[lang] = DishTranslation{}
	}
}
