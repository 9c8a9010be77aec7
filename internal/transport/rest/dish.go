package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/service/dish"
	"github.com/heartmarshall/clubhouse-backend/internal/transport/loader"
)

type dishService interface {
	Create(ctx context.Context, input dish.CreateInput) (*domain.Dish, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Dish, error)
	List(ctx context.Context, input dish.ListInput) ([]*domain.Dish, error)
	PendingQueue(ctx context.Context, limit int) ([]*domain.Dish, error)
	ProposeEdit(ctx context.Context, input dish.EditInput) (*dish.EditResult, error)
	ApplySuggestion(ctx context.Context, id uuid.UUID, handle string) (int, error)
	DenySuggestion(ctx context.Context, id uuid.UUID, handle string) (int, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.Dish, error)
	Reject(ctx context.Context, id uuid.UUID) error
	Like(ctx context.Context, id uuid.UUID) (int64, error)
}

// DishHandler serves /api/dishes.
type DishHandler struct {
	svc dishService
	v   requestValidator
	log *slog.Logger
}

// NewDishHandler creates a DishHandler.
func NewDishHandler(svc dishService, v requestValidator, logger *slog.Logger) *DishHandler {
	return &DishHandler{svc: svc, v: v, log: logger.With("handler", "dish")}
}

// Routes mounts the dish endpoints on r.
func (h *DishHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/pending", h.Pending)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Edit)
		r.Post("/approve", h.Approve)
		r.Post("/reject", h.Reject)
		r.Post("/like", h.Like)
		r.Post("/suggestions/{hash}/apply", h.Apply)
		r.Post("/suggestions/{hash}/deny", h.Deny)
	})
}

type createDishRequest struct {
	Language    string  `json:"language"    validate:"required,lang"`
	Name        string  `json:"name"        validate:"required,max=200"`
	Origin      *string `json:"origin"      validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Recipe      *string `json:"recipe"      validate:"omitempty,max=20000"`
}

type dishResponse struct {
	ID           string                            `json:"id"`
	Origin       *string                           `json:"origin"`
	Likes        int64                             `json:"likes"`
	Translations map[string]domain.DishTranslation `json:"translations"`
	moderationResponse
}

type dishEditResponse struct {
	Dish dishResponse `json:"dish"`
	editResponse
}

type likeResponse struct {
	Likes int64 `json:"likes"`
}

// Create handles POST /api/dishes.
func (h *DishHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDishRequest
	if err := decodeBody(w, r, h.v, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Create(r.Context(), dish.CreateInput{
		Language:    req.Language,
		Name:        req.Name,
		Origin:      req.Origin,
		Description: req.Description,
		Recipe:      req.Recipe,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDishResponse(d, nil))
}

// Get handles GET /api/dishes/{id}.
func (h *DishHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDishResponse(d, nil))
}

// List handles GET /api/dishes?q=&limit=&offset=.
func (h *DishHandler) List(w http.ResponseWriter, r *http.Request) {
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

	dishes, err := h.svc.List(r.Context(), dish.ListInput{
		Query:  r.URL.Query().Get("q"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeDishes(w, r, dishes, false)
}

// Pending handles GET /api/dishes/pending, the moderation queue.
func (h *DishHandler) Pending(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	dishes, err := h.svc.PendingQueue(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.writeDishes(w, r, dishes, true)
}

func (h *DishHandler) writeDishes(w http.ResponseWriter, r *http.Request, dishes []*domain.Dish, withNames bool) {
	var names map[uuid.UUID]string
	if withNames {
		states := make([]*domain.Moderation, len(dishes))
		for i, d := range dishes {
			states[i] = &d.Moderation
		}
		var err error
		if names, err = loader.AuthorNames(r.Context(), states...); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	out := make([]dishResponse, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, toDishResponse(d, names))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// Edit handles PUT /api/dishes/{id}.
func (h *DishHandler) Edit(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.svc.ProposeEdit(r.Context(), dish.EditInput{
		ID:       id,
		Language: req.Language,
		Values:   req.fields(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dishEditResponse{
		Dish:         toDishResponse(res.Dish, nil),
		editResponse: toEditResponse(res.Applied, res.Suggested),
	})
}

// Approve handles POST /api/dishes/{id}/approve.
func (h *DishHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	d, err := h.svc.Approve(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDishResponse(d, nil))
}

// Reject handles POST /api/dishes/{id}/reject.
func (h *DishHandler) Reject(w http.ResponseWriter, r *http.Request) {
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

// Like handles POST /api/dishes/{id}/like.
func (h *DishHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	likes, err := h.svc.Like(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, likeResponse{Likes: likes})
}

// Apply handles POST /api/dishes/{id}/suggestions/{hash}/apply.
func (h *DishHandler) Apply(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.ApplySuggestion)
}

// Deny handles POST /api/dishes/{id}/suggestions/{hash}/deny.
func (h *DishHandler) Deny(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.DenySuggestion)
}

func (h *DishHandler) decide(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID, string) (int, error)) {
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

func toDishResponse(d *domain.Dish, names map[uuid.UUID]string) dishResponse {
	translations := d.Translations
	if translations == nil {
		translations = map[string]domain.DishTranslation{}
	}
	return dishResponse{
		ID:                 d.ID.String(),
		Origin:             d.Origin,
		Likes:              d.Likes,
		Translations:       translations,
		moderationResponse: toModerationResponse(&d.Moderation, names),
	}
}
