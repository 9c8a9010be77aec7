package graphql

import (
	"log/slog"
	"net/http"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/vektah/gqlparser/v2/ast"
)

const (
	queryCacheSize  = 1000
	complexityLimit = 500
)

// NewHandler returns the GraphQL endpoint backed by r. Introspection is not
// enabled.
func NewHandler(r *Resolver, logger *slog.Logger) http.Handler {
	srv := gqlhandler.New(&executableSchema{schema: parsedSchema, resolver: r})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})
	srv.SetQueryCache(lru.New[*ast.QueryDocument](queryCacheSize))
	srv.Use(extension.FixedComplexityLimit(complexityLimit))
	srv.SetErrorPresenter(NewErrorPresenter(logger.With("handler", "graphql")))
	return srv
}
