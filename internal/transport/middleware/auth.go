package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/clubhouse-backend/internal/auth"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (auth.Identity, error)
}

// roleLookup returns the stored user. A stored role takes precedence over the
// role claimed by the token, so promotions apply without reissuing tokens.
type roleLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Auth resolves the bearer token into a user id and role on the request
// context. Requests without a token pass through anonymously. roles may be nil.
func Auth(validator tokenValidator, roles roleLookup, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := validator.Validate(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "invalid or expired token")
				return
			}

			role := id.Role
			if roles != nil {
				u, err := roles.GetByID(r.Context(), id.UserID)
				switch {
				case err == nil:
					role = u.Role
				case errors.Is(err, domain.ErrNotFound):
				default:
					logger.ErrorContext(r.Context(), "role lookup failed",
						slog.String("user_id", id.UserID.String()),
						slog.String("error", err.Error()),
					)
					writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
					return
				}
			}
			if !role.IsValid() {
				role = domain.UserRoleUser
			}

			ctx := ctxutil.WithUserID(r.Context(), id.UserID)
			ctx = ctxutil.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
