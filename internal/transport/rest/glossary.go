package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/service/glossary"
	"github.com/heartmarshall/clubhouse-backend/internal/transport/loader"
)

type glossaryService interface {
	Create(ctx context.Context, input glossary.CreateInput) (*domain.GlossaryEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.GlossaryEntry, error)
	List(ctx context.Context, input glossary.ListInput) ([]*domain.GlossaryEntry, error)
	PendingQueue(ctx context.Context, limit int) ([]*domain.GlossaryEntry, error)
	ProposeEdit(ctx context.Context, input glossary.EditInput) (*glossary.EditResult, error)
	ApplySuggestion(ctx context.Context, id uuid.UUID, handle string) (int, error)
	DenySuggestion(ctx context.Context, id uuid.UUID, handle string) (int, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.GlossaryEntry, error)
	Reject(ctx context.Context, id uuid.UUID) error
}

// GlossaryHandler serves /api/glossary.
type GlossaryHandler struct {
	svc glossaryService
	v   requestValidator
	log *slog.Logger
}

// NewGlossaryHandler creates a GlossaryHandler.
func NewGlossaryHandler(svc glossaryService, v requestValidator, logger *slog.Logger) *GlossaryHandler {
	return &GlossaryHandler{svc: svc, v: v, log: logger.With("handler", "glossary")}
}

// Routes mounts the glossary endpoints on r.
func (h *GlossaryHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/pending", h.Pending)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Edit)
		r.Post("/approve", h.Approve)
		r.Post("/reject", h.Reject)
		r.Post("/suggestions/{hash}/apply", h.Apply)
		r.Post("/suggestions/{hash}/deny", h.Deny)
	})
}

type createGlossaryRequest struct {
	Language    string  `json:"language"    validate:"omitempty,lang"`
	Phrase      string  `json:"phrase"      validate:"required,max=200"`
	Pinyin      *string `json:"pinyin"      validate:"omitempty,max=200"`
	Category    *string `json:"category"    validate:"omitempty,max=100"`
	Explanation *string `json:"explanation" validate:"omitempty,max=5000"`
}

type glossaryResponse struct {
	ID           string            `json:"id"`
	Phrase       string            `json:"phrase"`
	Pinyin       *string           `json:"pinyin"`
	Category     *string           `json:"category"`
	Explanations map[string]string `json:"explanations"`
	moderationResponse
}

type glossaryEditResponse struct {
	Entry glossaryResponse `json:"entry"`
	editResponse
}

// Create handles POST /api/glossary.
func (h *GlossaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGlossaryRequest
	if err := decodeBody(w, r, h.v, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Create(r.Context(), glossary.CreateInput{
		Language:    req.Language,
		Phrase:      req.Phrase,
		Pinyin:      req.Pinyin,
		Category:    req.Category,
		Explanation: req.Explanation,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGlossaryResponse(entry, nil))
}

// Get handles GET /api/glossary/{id}.
func (h *GlossaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGlossaryResponse(entry, nil))
}

// List handles GET /api/glossary?q=&limit=&offset=.
func (h *GlossaryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.List(r.Context(), glossary.ListInput{
		Query:  r.URL.Query().Get("q"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeEntries(w, r, entries, false)
}

// Pending handles GET /api/glossary/pending, the moderation queue.
func (h *GlossaryHandler) Pending(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	entries, err := h.svc.PendingQueue(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeEntries(w, r, entries, true)
}

func (h *GlossaryHandler) writeEntries(w http.ResponseWriter, r *http.Request, entries []*domain.GlossaryEntry, withNames bool) {
	var names map[uuid.UUID]string
	if withNames {
		states := make([]*domain.Moderation, len(entries))
		for i, e := range entries {
			states[i] = &e.Moderation
		}
		var err error
		if names, err = loader.AuthorNames(r.Context(), states...); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	out := make([]glossaryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toGlossaryResponse(e, names))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// Edit handles PUT /api/glossary/{id}.
func (h *GlossaryHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req editRequest
	if err := decodeBody(w, r, h.v, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ProposeEdit(r.Context(), glossary.EditInput{
		ID:       id,
		Language: req.Language,
		Values:   req.fields(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, glossaryEditResponse{
		Entry:        toGlossaryResponse(res.Entry, nil),
		editResponse: toEditResponse(res.Applied, res.Suggested),
	})
}

// Approve handles POST /api/glossary/{id}/approve.
func (h *GlossaryHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	entry, err := h.svc.Approve(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGlossaryResponse(entry, nil))
}

// Reject handles POST /api/glossary/{id}/reject.
func (h *GlossaryHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Reject(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Apply handles POST /api/glossary/{id}/suggestions/{hash}/apply.
func (h *GlossaryHandler) Apply(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.ApplySuggestion)
}

// Deny handles POST /api/glossary/{id}/suggestions/{hash}/deny.
func (h *GlossaryHandler) Deny(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.DenySuggestion)
}

func (h *GlossaryHandler) decide(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID, string) (int, error)) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	remaining, err := fn(r.Context(), id, chi.URLParam(r, "hash"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, decisionResponse{Remaining: remaining})
}

func toGlossaryResponse(e *domain.GlossaryEntry, names map[uuid.UUID]string) glossaryResponse {
	explanations := e.Explanations
	if explanations == nil {
		explanations = map[string]string{}
	}
	return glossaryResponse{
		ID:                 e.ID.String(),
		Phrase:             e.Phrase,
		Pinyin:             e.Pinyin,
		Category:           e.Category,
		Explanations:       explanations,
		moderationResponse: toModerationResponse(&e.Moderation, names),
	}
}
