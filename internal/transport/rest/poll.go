package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/service/poll"
)

type pollService interface {
	CreatePoll(ctx context.Context, input poll.CreatePollInput) (*domain.Poll, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	GetByContext(ctx context.Context, contextID uuid.UUID) (*domain.Poll, error)
	CastBallot(ctx context.Context, input poll.CastBallotInput) (*domain.Ballot, error)
	ClosePoll(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	Results(ctx context.Context, id uuid.UUID) (*poll.Results, error)
}

// PollHandler serves /api/polls.
type PollHandler struct {
	svc pollService
	v   requestValidator
	log *slog.Logger
	now func() time.Time
}

// NewPollHandler creates a PollHandler.
func NewPollHandler(svc pollService, v requestValidator, logger *slog.Logger) *PollHandler {
	return &PollHandler{svc: svc, v: v, log: logger.With("handler", "poll"), now: time.Now}
}

// Routes mounts the poll endpoints on r.
func (h *PollHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/by-context/{contextID}", h.GetByContext)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/ballots", h.Cast)
		r.Post("/close", h.Close)
		r.Get("/tally", h.Tally)
	})
}

type createPollRequest struct {
	ContextID string    `json:"context_id" validate:"required,uuid"`
	Club      string    `json:"club"       validate:"required,club"`
	ClosesAt  time.Time `json:"closes_at"  validate:"required"`
}

type castBallotRequest struct {
	ChoiceID string `json:"choice_id" validate:"required,uuid"`
}

type pollResponse struct {
	ID        string    `json:"id"`
	ContextID string    `json:"context_id"`
	Club      string    `json:"club"`
	ClosesAt  time.Time `json:"closes_at"`
	IsClosed  bool      `json:"is_closed"`
	IsOpen    bool      `json:"is_open"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}

type ballotResponse struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	ChoiceID  string    `json:"choice_id"`
	MemberID  string    `json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
}

type choiceCountResponse struct {
	ChoiceID string `json:"choice_id"`
	Votes    int    `json:"votes"`
}

type tallyResponse struct {
	Poll    pollResponse          `json:"poll"`
	Winner  *string               `json:"winner"`
	Total   int                   `json:"total"`
	Results []choiceCountResponse `json:"results"`
}

// Create handles POST /api/polls.
func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := decodeBody(w, r, h.v, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.CreatePoll(r.Context(), poll.CreatePollInput{
		ContextID: uuid.MustParse(req.ContextID),
		Club:      domain.Club(req.Club),
		ClosesAt:  req.ClosesAt,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.toPollResponse(p))
}

// Get handles GET /api/polls/{id}.
func (h *PollHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toPollResponse(p))
}

// GetByContext handles GET /api/polls/by-context/{contextID}.
func (h *PollHandler) GetByContext(w http.ResponseWriter, r *http.Request) {
	contextID, err := pathUUID(r, "contextID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.svc.GetByContext(r.Context(), contextID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toPollResponse(p))
}

// Cast handles POST /api/polls/{id}/ballots.
func (h *PollHandler) Cast(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req castBallotRequest
	if err := decodeBody(w, r, h.v, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	b, err := h.svc.CastBallot(r.Context(), poll.CastBallotInput{
		PollID:   id,
		ChoiceID: uuid.MustParse(req.ChoiceID),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ballotResponse{
		ID:        b.ID.String(),
		PollID:    b.PollID.String(),
		ChoiceID:  b.ChoiceID.String(),
		MemberID:  b.MemberID.String(),
		CreatedAt: b.CreatedAt,
	})
}

// Close handles POST /api/polls/{id}/close.
func (h *PollHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.svc.ClosePoll(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toPollResponse(p))
}

// Tally handles GET /api/polls/{id}/tally.
func (h *PollHandler) Tally(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	res, err := h.svc.Results(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := tallyResponse{
		Poll:    h.toPollResponse(res.Poll),
		Total:   res.Total,
		Results: make([]choiceCountResponse, 0, len(res.Counts)),
	}
	if res.Winner != nil {
		s := res.Winner.String()
		resp.Winner = &s
	}
	for _, c := range res.Counts {
		resp.Results = append(resp.Results, choiceCountResponse{ChoiceID: c.ChoiceID.String(), Votes: c.Votes})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PollHandler) toPollResponse(p *domain.Poll) pollResponse {
	return pollResponse{
		ID:        p.ID.String(),
		ContextID: p.ContextID.String(),
		Club:      p.Club.String(),
		ClosesAt:  p.ClosesAt,
		IsClosed:  p.IsClosed,
		IsOpen:    p.IsOpen(h.now()),
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedBy.String(),
	}
}
