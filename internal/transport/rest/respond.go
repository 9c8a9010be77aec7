package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

// maxBodyBytes caps request bodies; recipes are the largest payload.
const maxBodyBytes = 1 << 20

// Error codes returned in the error envelope.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeValidation      = "VALIDATION"
	CodeVotingClosed    = "VOTING_CLOSED"
	CodeDuplicateVote   = "DUPLICATE_VOTE"
	CodeInvalidChoice   = "INVALID_CHOICE"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeInternal        = "INTERNAL"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// requestValidator checks decoded request bodies.
type requestValidator interface {
	Validate(s any) error
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string, fields ...domain.FieldError) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message, Fields: fields}})
}

// handleError maps domain errors onto HTTP statuses. Anything unrecognised
// is logged and reported as INTERNAL without leaking details.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	var snf *domain.SuggestionNotFoundError

	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, CodeValidation, "validation failed", ve.Errors...)
	case errors.As(err, &snf):
		writeError(w, http.StatusNotFound, CodeNotFound, "suggestion not found")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, CodeValidation, "validation failed")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, "not found")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, CodeConflict, "conflict")
	case errors.Is(err, domain.ErrVotingClosed):
		writeError(w, http.StatusUnprocessableEntity, CodeVotingClosed, "voting is closed")
	case errors.Is(err, domain.ErrDuplicateVote):
		writeError(w, http.StatusUnprocessableEntity, CodeDuplicateVote, "member has already voted")
	case errors.Is(err, domain.ErrInvalidChoice):
		writeError(w, http.StatusUnprocessableEntity, CodeInvalidChoice, "invalid choice")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, CodeUnauthenticated, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, CodeForbidden, "forbidden")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}

// decodeBody reads a JSON body into dst and validates it. Unknown fields are
// rejected so typos in field names do not silently drop edits.
func decodeBody(w http.ResponseWriter, r *http.Request, v requestValidator, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "is required")
		}
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return v.Validate(dst)
}

// pathUUID parses a chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

// queryInt reads a non-negative integer query parameter, defaulting to 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, fmt.Sprintf("must be a non-negative integer, got %q", raw))
	}
	return n, nil
}
