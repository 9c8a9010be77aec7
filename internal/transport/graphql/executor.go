package graphql

import (
	"bytes"
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// executableSchema implements graphql.ExecutableSchema over Resolver.
type executableSchema struct {
	schema   *ast.Schema
	resolver *Resolver
}

var _ graphql.ExecutableSchema = (*executableSchema)(nil)

func (e *executableSchema) Schema() *ast.Schema { return e.schema }

// Complexity leaves every field at the default cost.
func (e *executableSchema) Complexity(_ context.Context, _, _ string, _ int, _ map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := &executionContext{OperationContext: opCtx, resolver: e.resolver}

	var (
		typeName string
		resolve  rootResolver
	)
	switch opCtx.Operation.Operation {
	case ast.Query:
		typeName, resolve = "Query", e.resolver.query
	case ast.Mutation:
		typeName, resolve = "Mutation", e.resolver.mutation
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		data := ec.root(ctx, typeName, opCtx.Operation.SelectionSet, resolve)
		var buf bytes.Buffer
		data.MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

// rootResolver resolves one top-level field of an operation.
type rootResolver func(ctx context.Context, ec *executionContext, f graphql.CollectedField, a args) (graphql.Marshaler, error)

type executionContext struct {
	*graphql.OperationContext
	resolver *Resolver
}

// root resolves the top-level fields in document order. A failing field is
// reported on its path and rendered as null; the remaining fields still run.
func (ec *executionContext) root(ctx context.Context, typeName string, sel ast.SelectionSet, resolve rootResolver) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{typeName})
	out := graphql.NewFieldSet(fields)
	for i, f := range fields {
		path := ast.Path{ast.PathName(f.Alias)}
		switch f.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString(typeName)
			continue
		case "__schema", "__type":
			graphql.AddError(ctx, &gqlerror.Error{Message: "introspection disabled", Path: path})
			out.Values[i] = graphql.Null
			continue
		}

		v, err := resolve(ctx, ec, f, args(f.ArgumentMap(ec.Variables)))
		if err != nil {
			graphql.AddError(ctx, gqlerror.WrapPath(path, err))
			v = nil
		}
		if v == nil {
			v = graphql.Null
		}
		out.Values[i] = v
	}
	return out
}

// object renders the selected fields of a value of typeName. field returns
// the value of one schema field given its sub-selection.
func (ec *executionContext) object(typeName string, sel ast.SelectionSet, field func(name string, sel ast.SelectionSet) graphql.Marshaler) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{typeName})
	out := graphql.NewFieldSet(fields)
	for i, f := range fields {
		if f.Name == "__typename" {
			out.Values[i] = graphql.MarshalString(typeName)
			continue
		}
		v := field(f.Name, f.Selections)
		if v == nil {
			v = graphql.Null
		}
		out.Values[i] = v
	}
	return out
}
