// Package graphql serves the query and moderation surface over GraphQL.
//
// The executable schema is written by hand against the gqlgen runtime: the
// SDL in schema.graphqls is parsed and validated by gqlparser, and fields are
// resolved by the resolvers in this package.
package graphql

import (
	_ "embed"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphqls
var schemaSource string

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSource})
