package graphql

import (
	"context"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/service/dish"
	"github.com/heartmarshall/clubhouse-backend/internal/service/glossary"
	"github.com/heartmarshall/clubhouse-backend/internal/service/poll"
	"github.com/heartmarshall/clubhouse-backend/internal/transport/loader"
)

type glossaryService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.GlossaryEntry, error)
	List(ctx context.Context, input glossary.ListInput) ([]*domain.GlossaryEntry, error)
	PendingQueue(ctx context.Context, limit int) ([]*domain.GlossaryEntry, error)
	ProposeEdit(ctx context.Context, input glossary.EditInput) (*glossary.EditResult, error)
	ApplySuggestion(ctx context.Context, id uuid.UUID, handle string) (int, error)
	DenySuggestion(ctx context.Context, id uuid.UUID, handle string) (int, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.GlossaryEntry, error)
	Reject(ctx context.Context, id uuid.UUID) error
}

type dishService interface {
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

type pollService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	GetByContext(ctx context.Context, contextID uuid.UUID) (*domain.Poll, error)
	CastBallot(ctx context.Context, input poll.CastBallotInput) (*domain.Ballot, error)
	ClosePoll(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	Results(ctx context.Context, id uuid.UUID) (*poll.Results, error)
}

// Resolver dispatches GraphQL fields to the services. It holds no request
// state; identity and loaders travel in the context.
type Resolver struct {
	glossary glossaryService
	dishes   dishService
	polls    pollService
	now      func() time.Time
}

// NewResolver creates a Resolver.
func NewResolver(glossarySvc glossaryService, dishSvc dishService, pollSvc pollService) *Resolver {
	return &Resolver{glossary: glossarySvc, dishes: dishSvc, polls: pollSvc, now: time.Now}
}

func (r *Resolver) query(ctx context.Context, ec *executionContext, f graphql.CollectedField, a args) (graphql.Marshaler, error) {
	switch f.Name {
	case "glossaryEntry":
		id, err := a.uuid("id")
		if err != nil {
			return nil, err
		}
		e, err := r.glossary.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return one(ec.glossaryEntries(ctx, f.Selections, e))

	case "glossaryEntries":
		in, err := listInput(a)
		if err != nil {
			return nil, err
		}
		entries, err := r.glossary.List(ctx, glossary.ListInput(in))
		if err != nil {
			return nil, err
		}
		return many(ec.glossaryEntries(ctx, f.Selections, entries...))

	case "pendingGlossaryEntries":
		limit, err := a.int("limit")
		if err != nil {
			return nil, err
		}
		entries, err := r.glossary.PendingQueue(ctx, limit)
		if err != nil {
			return nil, err
		}
		return many(ec.glossaryEntries(ctx, f.Selections, entries...))

	case "dish":
		id, err := a.uuid("id")
		if err != nil {
			return nil, err
		}
		d, err := r.dishes.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return one(ec.dishes(ctx, f.Selections, d))

	case "dishes":
		in, err := listInput(a)
		if err != nil {
			return nil, err
		}
		list, err := r.dishes.List(ctx, dish.ListInput(in))
		if err != nil {
			return nil, err
		}
		return many(ec.dishes(ctx, f.Selections, list...))

	case "pendingDishes":
		limit, err := a.int("limit")
		if err != nil {
			return nil, err
		}
		list, err := r.dishes.PendingQueue(ctx, limit)
		if err != nil {
			return nil, err
		}
		return many(ec.dishes(ctx, f.Selections, list...))

	case "poll", "pollByContext":
		key := "id"
		get := r.polls.Get
		if f.Name == "pollByContext" {
			key, get = "contextId", r.polls.GetByContext
		}
		id, err := a.uuid(key)
		if err != nil {
			return nil, err
		}
		p, err := get(ctx, id)
		if err != nil {
			return nil, err
		}
		return ec.marshalPoll(p, f.Selections), nil

	case "tally":
		id, err := a.uuid("pollId")
		if err != nil {
			return nil, err
		}
		res, err := r.polls.Results(ctx, id)
		if err != nil {
			return nil, err
		}
		return ec.marshalTally(res, f.Selections), nil
	}
	return nil, nil
}

func (r *Resolver) mutation(ctx context.Context, ec *executionContext, f graphql.CollectedField, a args) (graphql.Marshaler, error) {
	switch f.Name {
	case "proposeGlossaryEdit":
		id, values, err := editArgs(a)
		if err != nil {
			return nil, err
		}
		res, err := r.glossary.ProposeEdit(ctx, glossary.EditInput{ID: id, Language: a.str("language"), Values: values})
		if err != nil {
			return nil, err
		}
		names, err := loader.AuthorNames(ctx, &res.Entry.Moderation)
		if err != nil {
			return nil, err
		}
		record := func(sel ast.SelectionSet) graphql.Marshaler { return ec.marshalGlossaryEntry(res.Entry, names, sel) }
		return ec.marshalEditResult("GlossaryEditResult", "entry", record, res.Applied, res.Suggested, f.Selections), nil

	case "applyGlossarySuggestion":
		return decide(ctx, a, r.glossary.ApplySuggestion)
	case "denyGlossarySuggestion":
		return decide(ctx, a, r.glossary.DenySuggestion)

	case "approveGlossaryEntry":
		id, err := a.uuid("id")
		if err != nil {
			return nil, err
		}
		e, err := r.glossary.Approve(ctx, id)
		if err != nil {
			return nil, err
		}
		return one(ec.glossaryEntries(ctx, f.Selections, e))

	case "rejectGlossaryEntry":
		return reject(ctx, a, r.glossary.Reject)

	case "proposeDishEdit":
		id, values, err := editArgs(a)
		if err != nil {
			return nil, err
		}
		res, err := r.dishes.ProposeEdit(ctx, dish.EditInput{ID: id, Language: a.str("language"), Values: values})
		if err != nil {
			return nil, err
		}
		names, err := loader.AuthorNames(ctx, &res.Dish.Moderation)
		if err != nil {
			return nil, err
		}
		record := func(sel ast.SelectionSet) graphql.Marshaler { return ec.marshalDish(res.Dish, names, sel) }
		return ec.marshalEditResult("DishEditResult", "dish", record, res.Applied, res.Suggested, f.Selections), nil

	case "applyDishSuggestion":
		return decide(ctx, a, r.dishes.ApplySuggestion)
	case "denyDishSuggestion":
		return decide(ctx, a, r.dishes.DenySuggestion)

	case "approveDish":
		id, err := a.uuid("id")
		if err != nil {
			return nil, err
		}
		d, err := r.dishes.Approve(ctx, id)
		if err != nil {
			return nil, err
		}
		return one(ec.dishes(ctx, f.Selections, d))

	case "rejectDish":
		return reject(ctx, a, r.dishes.Reject)

	case "likeDish":
		id, err := a.uuid("id")
		if err != nil {
			return nil, err
		}
		likes, err := r.dishes.Like(ctx, id)
		if err != nil {
			return nil, err
		}
		return graphql.MarshalInt64(likes), nil

	case "castBallot":
		pollID, err := a.uuid("pollId")
		if err != nil {
			return nil, err
		}
		choiceID, err := a.uuid("choiceId")
		if err != nil {
			return nil, err
		}
		b, err := r.polls.CastBallot(ctx, poll.CastBallotInput{PollID: pollID, ChoiceID: choiceID})
		if err != nil {
			return nil, err
		}
		return ec.marshalBallot(b, f.Selections), nil

	case "closePoll":
		id, err := a.uuid("pollId")
		if err != nil {
			return nil, err
		}
		p, err := r.polls.ClosePoll(ctx, id)
		if err != nil {
			return nil, err
		}
		return ec.marshalPoll(p, f.Selections), nil
	}
	return nil, nil
}

type listArgs struct {
	Query  string
	Limit  int
	Offset int
}

func listInput(a args) (listArgs, error) {
	limit, err := a.int("limit")
	if err != nil {
		return listArgs{}, err
	}
	offset, err := a.int("offset")
	if err != nil {
		return listArgs{}, err
	}
	return listArgs{Query: a.str("query"), Limit: limit, Offset: offset}, nil
}

func editArgs(a args) (uuid.UUID, map[domain.Field]*string, error) {
	id, err := a.uuid("id")
	if err != nil {
		return uuid.Nil, nil, err
	}
	values, err := a.fieldValues("values")
	if err != nil {
		return uuid.Nil, nil, err
	}
	return id, values, nil
}

// decide runs an apply or deny decision and renders the remaining count.
func decide(ctx context.Context, a args, fn func(ctx context.Context, id uuid.UUID, handle string) (int, error)) (graphql.Marshaler, error) {
	id, err := a.uuid("id")
	if err != nil {
		return nil, err
	}
	remaining, err := fn(ctx, id, a.str("hash"))
	if err != nil {
		return nil, err
	}
	return graphql.MarshalInt(remaining), nil
}

func reject(ctx context.Context, a args, fn func(ctx context.Context, id uuid.UUID) error) (graphql.Marshaler, error) {
	id, err := a.uuid("id")
	if err != nil {
		return nil, err
	}
	if err := fn(ctx, id); err != nil {
		return nil, err
	}
	return graphql.MarshalBoolean(true), nil
}

func one(out []graphql.Marshaler, err error) (graphql.Marshaler, error) {
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func many(out []graphql.Marshaler, err error) (graphql.Marshaler, error) {
	if err != nil {
		return nil, err
	}
	return graphql.Array(out), nil
}
