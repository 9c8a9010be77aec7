package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres/ballot"
	"github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres/candidate"
	dishrepo "github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres/dish"
	glossaryrepo "github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres/glossary"
	pollrepo "github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres/poll"
	"github.com/heartmarshall/clubhouse-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/clubhouse-backend/internal/auth"
	"github.com/heartmarshall/clubhouse-backend/internal/config"
	"github.com/heartmarshall/clubhouse-backend/internal/metrics"
	"github.com/heartmarshall/clubhouse-backend/internal/moderation"
	"github.com/heartmarshall/clubhouse-backend/internal/service/club"
	"github.com/heartmarshall/clubhouse-backend/internal/service/dish"
	"github.com/heartmarshall/clubhouse-backend/internal/service/glossary"
	"github.com/heartmarshall/clubhouse-backend/internal/service/poll"
	"github.com/heartmarshall/clubhouse-backend/internal/transport/graphql"
	"github.com/heartmarshall/clubhouse-backend/internal/transport/middleware"
	"github.com/heartmarshall/clubhouse-backend/internal/transport/rest"
	"github.com/heartmarshall/clubhouse-backend/internal/validation"
	"github.com/heartmarshall/clubhouse-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled, then
// shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return err
	}

	handler, cleanup := newHandler(cfg, logger, pool, provider)
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, logger, srv, cfg.Server)
}

// newHandler wires repositories, services and the router. cleanup releases
// background resources owned by the handler tree.
func newHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, provider *goose.Provider) (http.Handler, func()) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)
	metrics.BuildInfo(registry, Version, Commit)

	txm := postgres.NewTxManager(pool)
	auditRepo := audit.New(pool)
	users := user.New(pool)
	candidates := candidate.New(pool)
	engine := moderation.New()

	glossarySvc := glossary.NewService(logger, glossaryrepo.New(pool), auditRepo, txm, engine, m, cfg.Moderation)
	dishSvc := dish.NewService(logger, dishrepo.New(pool), auditRepo, txm, engine, m, cfg.Moderation)
	pollSvc := poll.NewService(logger, pollrepo.New(pool), ballot.New(pool), candidates, auditRepo, txm, m, cfg.Voting)
	clubSvc := club.NewService(logger, candidates, auditRepo, txm)

	v := validation.New()

	var limiter *middleware.RateLimiter
	cleanup := func() {}
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
		cleanup = limiter.Stop
	}

	health := rest.NewHealthHandler(BuildVersion(),
		rest.Check{Name: "database", Fn: pool.Ping},
		rest.Check{Name: "schema", Fn: schemaCheck(provider)},
	)

	return rest.NewRouter(rest.Deps{
		Logger:      logger,
		Metrics:     m,
		Gatherer:    registry,
		CORS:        cfg.CORS,
		RateLimiter: limiter,
		Tokens:      auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Users:       users,
		Health:      health,
		Glossary:    rest.NewGlossaryHandler(glossarySvc, v, logger),
		Dishes:      rest.NewDishHandler(dishSvc, v, logger),
		Polls:       rest.NewPollHandler(pollSvc, v, logger),
		Clubs:       rest.NewClubHandler(clubSvc, v, logger),
		GraphQL:     graphql.NewHandler(graphql.NewResolver(glossarySvc, dishSvc, pollSvc), logger),
	}), cleanup
}

// schemaCheck fails readiness while migrations are pending.
func schemaCheck(provider *goose.Provider) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		pending, err := provider.HasPending(ctx)
		if err != nil {
			return fmt.Errorf("check migrations: %w", err)
		}
		if pending {
			return errors.New("pending migrations")
		}
		return nil
	}
}

// serve runs srv until ctx is done or the listener fails, then drains
// in-flight requests within ShutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, cfg config.ServerConfig) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
