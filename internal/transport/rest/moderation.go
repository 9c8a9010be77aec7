package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

type suggestionResponse struct {
	Hash          string    `json:"hash"`
	Field         string    `json:"field"`
	Language      string    `json:"language,omitempty"`
	Value         string    `json:"value"`
	CreatedBy     string    `json:"created_by"`
	CreatedByName string    `json:"created_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type moderationResponse struct {
	Approved      bool                 `json:"approved"`
	CreatedBy     string               `json:"created_by"`
	CreatedByName string               `json:"created_by_name,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	Version       int                  `json:"version"`
	Suggestions   []suggestionResponse `json:"suggestions"`
}

type editResponse struct {
	Applied   []string `json:"applied"`
	Suggested []string `json:"suggested"`
}

type decisionResponse struct {
	Remaining int `json:"remaining"`
}

// editRequest is the body of a proposed edit. A null value clears the field.
type editRequest struct {
	Language string             `json:"language" validate:"omitempty,lang"`
	Values   map[string]*string `json:"values"   validate:"required,min=1"`
}

func (r editRequest) fields() map[domain.Field]*string {
	out := make(map[domain.Field]*string, len(r.Values))
	for k, v := range r.Values {
		out[domain.Field(k)] = v
	}
	return out
}

func toModerationResponse(m *domain.Moderation, names map[uuid.UUID]string) moderationResponse {
	resp := moderationResponse{
		Approved:      m.Approved,
		CreatedBy:     m.CreatedBy.String(),
		CreatedByName: names[m.CreatedBy],
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Version:       m.Version,
		Suggestions:   make([]suggestionResponse, 0, len(m.Suggestions)),
	}
	for _, s := range m.Suggestions {
		resp.Suggestions = append(resp.Suggestions, suggestionResponse{
			Hash:          s.Hash(),
			Field:         s.Field.String(),
			Language:      s.Language,
			Value:         s.Value,
			CreatedBy:     s.CreatedBy.String(),
			CreatedByName: names[s.CreatedBy],
			CreatedAt:     s.CreatedAt,
		})
	}
	return resp
}

func toEditResponse(applied []domain.Field, suggested []string) editResponse {
	resp := editResponse{Applied: make([]string, 0, len(applied)), Suggested: suggested}
	for _, f := range applied {
		resp.Applied = append(resp.Applied, f.String())
	}
	if resp.Suggested == nil {
		resp.Suggested = []string{}
	}
	return resp
}
