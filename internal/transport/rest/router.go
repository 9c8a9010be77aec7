// Package rest exposes the services over a JSON HTTP API.
package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/clubhouse-backend/internal/auth"
	"github.com/heartmarshall/clubhouse-backend/internal/config"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/metrics"
	"github.com/heartmarshall/clubhouse-backend/internal/transport/loader"
	"github.com/heartmarshall/clubhouse-backend/internal/transport/middleware"
)

type tokenValidator interface {
	Validate(token string) (auth.Identity, error)
}

type userStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Deps holds everything the router mounts.
type Deps struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
	CORS     config.CORSConfig
	// RateLimiter guards /api; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
	Tokens      tokenValidator
	Users       userStore

	Health   *HealthHandler
	Glossary *GlossaryHandler
	Dishes   *DishHandler
	Polls    *PollHandler
	Clubs    *ClubHandler
	// GraphQL is mounted at /api/graphql when set.
	GraphQL http.Handler
}

// NewRouter builds the HTTP handler tree.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger, d.Metrics),
		middleware.CORS(d.CORS),
	)

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Limit())
		}
		var roles interface {
			GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
		}
		if d.Users != nil {
			roles = d.Users
			r.Use(loader.Middleware(d.Users))
		}
		r.Use(middleware.Auth(d.Tokens, roles, d.Logger))

		r.Route("/glossary", d.Glossary.Routes)
		r.Route("/dishes", d.Dishes.Routes)
		r.Route("/polls", d.Polls.Routes)
		r.Route("/clubs", d.Clubs.Routes)
		if d.GraphQL != nil {
			r.Handle("/graphql", d.GraphQL)
		}
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})
	return r
}
