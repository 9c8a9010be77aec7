package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/service/club"
)

type clubService interface {
	SuggestCandidate(ctx context.Context, input club.SuggestCandidateInput) (*domain.Candidate, error)
	ListCandidates(ctx context.Context, c domain.Club) ([]domain.Candidate, error)
}

// ClubHandler serves /api/clubs.
type ClubHandler struct {
	svc clubService
	v   requestValidator
	log *slog.Logger
}

// NewClubHandler creates a ClubHandler.
func NewClubHandler(svc clubService, v requestValidator, logger *slog.Logger) *ClubHandler {
	return &ClubHandler{svc: svc, v: v, log: logger.With("handler", "club")}
}

// Routes mounts the club endpoints on r.
func (h *ClubHandler) Routes(r chi.Router) {
	r.Post("/{club}/candidates", h.Suggest)
	r.Get("/{club}/candidates", h.List)
}

type suggestCandidateRequest struct {
	Title   string  `json:"title"   validate:"required,max=300"`
	Creator *string `json:"creator" validate:"omitempty,max=200"`
	Year    *int    `json:"year"    validate:"omitempty,gte=1800,lte=2200"`
}

type candidateResponse struct {
	ID          string    `json:"id"`
	Club        string    `json:"club"`
	Title       string    `json:"title"`
	Creator     *string   `json:"creator"`
	Year        *int      `json:"year"`
	SuggestedBy string    `json:"suggested_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// Suggest handles POST /api/clubs/{club}/candidates.
func (h *ClubHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req suggestCandidateRequest
	if err := decodeBody(w, r, h.v, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.SuggestCandidate(r.Context(), club.SuggestCandidateInput{
		Club:    domain.Club(chi.URLParam(r, "club")),
		Title:   req.Title,
		Creator: req.Creator,
		Year:    req.Year,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCandidateResponse(c))
}

// List handles GET /api/clubs/{club}/candidates.
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.svc.ListCandidates(r.Context(), domain.Club(chi.URLParam(r, "club")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]candidateResponse, 0, len(candidates))
	for i := range candidates {
		out = append(out, toCandidateResponse(&candidates[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func toCandidateResponse(c *domain.Candidate) candidateResponse {
	return candidateResponse{
		ID:          c.ID.String(),
		Club:        c.Club.String(),
		Title:       c.Title,
		Creator:     c.Creator,
		Year:        c.Year,
		SuggestedBy: c.SuggestedBy.String(),
		CreatedAt:   c.CreatedAt,
	}
}
