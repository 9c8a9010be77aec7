package poll

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/config"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/metrics"
	"github.com/heartmarshall/clubhouse-backend/pkg/ctxutil"
)

type pollRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	GetByContextID(ctx context.Context, contextID uuid.UUID) (*domain.Poll, error)
	Create(ctx context.Context, p *domain.Poll) error
	Save(ctx context.Context, p *domain.Poll) error
}

type ballotRepo interface {
	FindByPollAndMember(ctx context.Context, pollID, memberID uuid.UUID) (*domain.Ballot, error)
	ListByPoll(ctx context.Context, pollID uuid.UUID) ([]domain.Ballot, error)
	Create(ctx context.Context, b *domain.Ballot) error
}

type candidateRepo interface {
	Exists(ctx context.Context, id uuid.UUID, club domain.Club) (bool, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs club polls: creation, ballots, closing and tallies.
type Service struct {
	log        *slog.Logger
	polls      pollRepo
	ballots    ballotRepo
	candidates candidateRepo
	audit      auditLogger
	tx         txManager
	metrics    *metrics.Metrics
	cfg        config.VotingConfig
	now        func() time.Time
}

// NewService creates a new Poll service. m may be nil.
func NewService(
	logger *slog.Logger,
	polls pollRepo,
	ballots ballotRepo,
	candidates candidateRepo,
	audit auditLogger,
	tx txManager,
	m *metrics.Metrics,
	cfg config.VotingConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "poll"),
		polls:      polls,
		ballots:    ballots,
		candidates: candidates,
		audit:      audit,
		tx:         tx,
		metrics:    m,
		cfg:        cfg,
		now:        time.Now,
	}
}

func manager(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsPrivilegedCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}
