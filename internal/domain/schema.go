package domain

// Field is the name of an editable field of a moderated record.
type Field string

const (
	FieldPhrase      Field = "phrase"
	FieldPinyin      Field = "pinyin"
	FieldCategory    Field = "category"
	FieldExplanation Field = "explanation"

	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldRecipe      Field = "recipe"
	FieldOrigin      Field = "origin"
)

func (f Field) String() string { return string(f) }

// FieldSpec describes one editable field of a record type.
type FieldSpec struct {
	Name Field
	// Translatable fields hold one value per language.
	Translatable bool
	// NullEqualsEmpty treats NULL and "" as the same value when deciding
	// whether a submitted value differs from the stored one.
	NullEqualsEmpty bool
}

// Schema is the ordered list of editable fields of a record type.
// Order is significant: edits are processed in declaration order.
type Schema []FieldSpec

// Lookup returns the definition of the named field.
func (s Schema) Lookup(name Field) (FieldSpec, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Fields returns the field names in declaration order.
func (s Schema) Fields() []Field {
	out := make([]Field, len(s))
	for i, f := range s {
		out[i] = f.Name
	}
	return out
}

// GlossarySchema is the editable field set of a glossary entry.
var GlossarySchema = Schema{
	{Name: FieldPhrase},
	{Name: FieldPinyin, NullEqualsEmpty: true},
	{Name: FieldCategory, NullEqualsEmpty: true},
	{Name: FieldExplanation, Translatable: true, NullEqualsEmpty: true},
}

// DishSchema is the editable field set of a dish.
var DishSchema = Schema{
	{Name: FieldOrigin, NullEqualsEmpty: true},
	{Name: FieldName, Translatable: true},
	{Name: FieldDescription, Translatable: true, NullEqualsEmpty: true},
	{Name: FieldRecipe, Translatable: true, NullEqualsEmpty: true},
}
