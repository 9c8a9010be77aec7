package dish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/config"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/metrics"
	"github.com/heartmarshall/clubhouse-backend/internal/moderation"
	"github.com/heartmarshall/clubhouse-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dishRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dish, error)
	List(ctx context.Context, f domain.RecordFilter) ([]*domain.Dish, error)
	ListPending(ctx context.Context, limit int) ([]*domain.Dish, error)
	Create(ctx context.Context, d *domain.Dish) error
	Save(ctx context.Context, d *domain.Dish) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementLikes(ctx context.Context, id uuid.UUID) (int64, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const kind = "dish"

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the dish moderation workflow and likes.
type Service struct {
	log     *slog.Logger
	dishes  dishRepo
	audit   auditLogger
	tx      txManager
	engine  *moderation.Engine
	metrics *metrics.Metrics
	cfg     config.ModerationConfig
}

// NewService creates a new Dish service. m may be nil.
func NewService(
	logger *slog.Logger,
	dishes dishRepo,
	audit auditLogger,
	tx txManager,
	engine *moderation.Engine,
	m *metrics.Metrics,
	cfg config.ModerationConfig,
) *Service {
	return &Service{
		log:     logger.With("service", kind),
		dishes:  dishes,
		audit:   audit,
		tx:      tx,
		engine:  engine,
		metrics: m,
		cfg:     cfg,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mutation changes a loaded dish and returns the audit action and changes to
// record. An empty action means nothing changed and nothing is saved.
type mutation func(d *domain.Dish) (domain.AuditAction, map[string]any, error)

// mutate runs load, fn and save in one transaction. When the save loses the
// version check the whole cycle is retried up to MaxConflictRetries times.
func (s *Service) mutate(ctx context.Context, id, actor uuid.UUID, fn mutation) (*domain.Dish, error) {
	for attempt := 0; ; attempt++ {
		var (
			dish  *domain.Dish
			stale bool
		)
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			d, err := s.dishes.GetByID(txCtx, id)
			if err != nil {
				return fmt.Errorf("get dish: %w", err)
			}

			action, changes, err := fn(d)
			if err != nil {
				return err
			}
			dish = d
			if action == "" {
				return nil
			}

			if err := s.dishes.Save(txCtx, d); err != nil {
				stale = errors.Is(err, domain.ErrConflict)
				return fmt.Errorf("save dish: %w", err)
			}
			record := domain.NewAuditRecord(actor, domain.EntityTypeDish, d.ID, action, changes, s.engine.Now())
			if err := s.audit.Log(txCtx, record); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
			return nil
		})
		if err == nil {
			return dish, nil
		}
		if !stale || attempt >= s.cfg.MaxConflictRetries {
			return nil, err
		}

		s.metrics.ConflictRetry(kind)
		s.log.DebugContext(ctx, "retrying after version conflict",
			slog.String("dish_id", id.String()),
			slog.Int("attempt", attempt+1),
		)
	}
}

// moderator returns the caller's id when the caller may moderate.
func moderator(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsPrivilegedCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

// clampLimit ensures a limit is within [1, max], defaulting from 0 to defaultVal.
func clampLimit(limit, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > max {
		return max
	}
	return limit
}
