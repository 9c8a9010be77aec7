// Package loader batches the user lookups needed to render moderation queues.
// Loaders are created per request, so cached names never outlive it.
package loader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Loaders holds the per-request loaders.
type Loaders struct {
	// AuthorNames resolves user ids to display names. Unknown users resolve
	// to an empty name rather than an error.
	AuthorNames *dataloader.Loader[uuid.UUID, string]
}

// New creates a fresh set of loaders backed by users.
func New(users userRepo) *Loaders {
	return &Loaders{
		AuthorNames: dataloader.NewBatchedLoader(
			newAuthorNamesBatchFn(users),
			dataloader.WithWait[uuid.UUID, string](wait),
			dataloader.WithBatchCapacity[uuid.UUID, string](maxBatch),
		),
	}
}

func newAuthorNamesBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, string] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[string] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			out := make([]*dataloader.Result[string], len(keys))
			for i := range out {
				out[i] = &dataloader.Result[string]{Error: err}
			}
			return out
		}

		names := make(map[uuid.UUID]string, len(users))
		for _, u := range users {
			names[u.ID] = u.DisplayName
		}

		out := make([]*dataloader.Result[string], len(keys))
		for i, k := range keys {
			out[i] = &dataloader.Result[string]{Data: names[k]}
		}
		return out
	}
}

// ResolveNames loads the display names of ids in one batch, keyed by id.
func (l *Loaders) ResolveNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	uniq := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == uuid.Nil {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	if len(uniq) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	names, errs := l.AuthorNames.LoadMany(ctx, uniq)()
	out := make(map[uuid.UUID]string, len(uniq))
	for i, id := range uniq {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		out[id] = names[i]
	}
	return out, nil
}

// AuthorNames resolves the record and suggestion authors of states through
// the request's loaders. Without loaders installed names stay empty.
func AuthorNames(ctx context.Context, states ...*domain.Moderation) (map[uuid.UUID]string, error) {
	l := FromContext(ctx)
	if l == nil {
		return map[uuid.UUID]string{}, nil
	}
	var ids []uuid.UUID
	for _, m := range states {
		ids = append(ids, m.CreatedBy)
		for _, s := range m.Suggestions {
			ids = append(ids, s.CreatedBy)
		}
	}
	return l.ResolveNames(ctx, ids)
}

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores l in ctx.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's loaders, or nil when the middleware is
// not installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// Middleware attaches a fresh set of loaders to every request.
func Middleware(users userRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), New(users))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
