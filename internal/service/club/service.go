package club

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/pkg/ctxutil"
)

type candidateRepo interface {
	Create(ctx context.Context, c *domain.Candidate) error
	ListByClub(ctx context.Context, club domain.Club) ([]domain.Candidate, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the films and books members put up for club polls.
type Service struct {
	log        *slog.Logger
	candidates candidateRepo
	audit      auditLogger
	tx         txManager
	now        func() time.Time
}

// NewService creates a new Club service.
func NewService(logger *slog.Logger, candidates candidateRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		log:        logger.With("service", "club"),
		candidates: candidates,
		audit:      audit,
		tx:         tx,
		now:        time.Now,
	}
}

// SuggestCandidateInput describes a film or book.
type SuggestCandidateInput struct {
	Club    domain.Club
	Title   string
	Creator *string
	Year    *int
}

// Validate checks all fields and collects all errors.
func (i SuggestCandidateInput) Validate() error {
	var errs []domain.FieldError
	if !i.Club.IsValid() {
		errs = append(errs, domain.FieldError{Field: "club", Message: fmt.Sprintf("unknown club %q", i.Club)})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 300 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}
	if i.Year != nil && (*i.Year < 1800 || *i.Year > 2200) {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be between 1800 and 2200"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SuggestCandidate adds a candidate that later polls may offer as a choice.
func (s *Service) SuggestCandidate(ctx context.Context, input SuggestCandidateInput) (*domain.Candidate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &domain.Candidate{
		ID:          uuid.New(),
		Club:        input.Club,
		Title:       strings.TrimSpace(input.Title),
		Creator:     trimOrNil(input.Creator),
		Year:        input.Year,
		SuggestedBy: userID,
		CreatedAt:   s.now().UTC(),
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.candidates.Create(txCtx, c); err != nil {
			return fmt.Errorf("create candidate: %w", err)
		}
		record := domain.NewAuditRecord(userID, domain.EntityTypeCandidate, c.ID, domain.AuditActionCreate,
			map[string]any{"club": string(c.Club), "title": c.Title}, c.CreatedAt)
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "candidate suggested",
		slog.String("user_id", userID.String()),
		slog.String("candidate_id", c.ID.String()),
		slog.String("club", string(c.Club)),
	)
	return c, nil
}

// ListCandidates returns the club's candidates, oldest first.
func (s *Service) ListCandidates(ctx context.Context, club domain.Club) ([]domain.Candidate, error) {
	if !club.IsValid() {
		return nil, domain.NewValidationError("club", fmt.Sprintf("unknown club %q", club))
	}
	list, err := s.candidates.ListByClub(ctx, club)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return list, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
