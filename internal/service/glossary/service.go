package glossary

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

type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GlossaryEntry, error)
	List(ctx context.Context, f domain.RecordFilter) ([]*domain.GlossaryEntry, error)
	ListPending(ctx context.Context, limit int) ([]*domain.GlossaryEntry, error)
	Create(ctx context.Context, e *domain.GlossaryEntry) error
	Save(ctx context.Context, e *domain.GlossaryEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const kind = "glossary"

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the glossary moderation workflow.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	audit   auditLogger
	tx      txManager
	engine  *moderation.Engine
	metrics *metrics.Metrics
	cfg     config.ModerationConfig
}

// NewService creates a new Glossary service. m may be nil.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	audit auditLogger,
	tx txManager,
	engine *moderation.Engine,
	m *metrics.Metrics,
	cfg config.ModerationConfig,
) *Service {
	return &Service{
		log:     logger.With("service", kind),
		entries: entries,
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

// mutation changes a loaded entry and returns the audit action and changes to
// record. An empty action means nothing changed and nothing is saved.
type mutation func(e *domain.GlossaryEntry) (domain.AuditAction, map[string]any, error)

// mutate runs load, fn and save in one transaction. When the save loses the
// version check the whole cycle is retried up to MaxConflictRetries times.
func (s *Service) mutate(ctx context.Context, id, actor uuid.UUID, fn mutation) (*domain.GlossaryEntry, error) {
	for attempt := 0; ; attempt++ {
		var (
			entry *domain.GlossaryEntry
			stale bool
		)
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			e, err := s.entries.GetByID(txCtx, id)
			if err != nil {
				return fmt.Errorf("get entry: %w", err)
			}

			action, changes, err := fn(e)
			if err != nil {
				return err
			}
			entry = e
			if action == "" {
				return nil
			}

			if err := s.entries.Save(txCtx, e); err != nil {
				stale = errors.Is(err, domain.ErrConflict)
				return fmt.Errorf("save entry: %w", err)
			}
			record := domain.NewAuditRecord(actor, domain.EntityTypeGlossary, e.ID, action, changes, s.engine.Now())
			if err := s.audit.Log(txCtx, record); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
			return nil
		})
		if err == nil {
			return entry, nil
		}
		if !stale || attempt >= s.cfg.MaxConflictRetries {
			return nil, err
		}

		s.metrics.ConflictRetry(kind)
		s.log.DebugContext(ctx, "retrying after version conflict",
			slog.String("entry_id", id.String()),
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
