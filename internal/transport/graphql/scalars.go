package graphql

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

func marshalUUID(v uuid.UUID) graphql.Marshaler {
	return graphql.MarshalString(v.String())
}

func marshalDateTime(v time.Time) graphql.Marshaler {
	return graphql.MarshalString(v.UTC().Format(time.RFC3339))
}

func marshalOptString(v *string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return graphql.MarshalString(*v)
}

// marshalName renders a resolved author name; unknown authors are null.
func marshalName(names map[uuid.UUID]string, id uuid.UUID) graphql.Marshaler {
	if n := names[id]; n != "" {
		return graphql.MarshalString(n)
	}
	return graphql.Null
}

func marshalStrings(vs []string) graphql.Marshaler {
	out := make(graphql.Array, 0, len(vs))
	for _, v := range vs {
		out = append(out, graphql.MarshalString(v))
	}
	return out
}

// args wraps the coerced arguments of one field.
type args map[string]any

func (a args) uuid(name string) (uuid.UUID, error) {
	s, ok := a[name].(string)
	if !ok {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

func (a args) str(name string) string {
	s, _ := a[name].(string)
	return s
}

// int reads an optional Int argument. Literals arrive as int64, variables as
// json.Number.
func (a args) int(name string) (int, error) {
	switch v := a[name].(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	case int64:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return 0, domain.NewValidationError(name, "out of range")
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, domain.NewValidationError(name, "must be an integer")
		}
		return args{name: n}.int(name)
	case float64:
		if v != math.Trunc(v) {
			return 0, domain.NewValidationError(name, "must be an integer")
		}
		return args{name: int64(v)}.int(name)
	default:
		return 0, domain.NewValidationError(name, fmt.Sprintf("unexpected type %T", v))
	}
}

// fieldValues reads a [FieldValue!]! argument into the edit map services take.
// A single object is accepted in place of a one-element list.
func (a args) fieldValues(name string) (map[domain.Field]*string, error) {
	var items []any
	switch v := a[name].(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	}

	out := make(map[domain.Field]*string, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, domain.NewValidationError(name, "must be a list of field values")
		}
		field, _ := obj["field"].(string)
		if field == "" {
			return nil, domain.NewValidationError(name, "field is required")
		}
		var value *string
		if s, ok := obj["value"].(string); ok {
			value = &s
		}
		out[domain.Field(field)] = value
	}
	return out, nil
}
