package graphql

import (
	"context"
	"sort"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/service/poll"
	"github.com/heartmarshall/clubhouse-backend/internal/transport/loader"
)

// moderationField renders the moderation fields shared by GlossaryEntry and
// Dish. ok is false for fields it does not own.
func (ec *executionContext) moderationField(m *domain.Moderation, names map[uuid.UUID]string, name string, sel ast.SelectionSet) (graphql.Marshaler, bool) {
	switch name {
	case "approved":
		return graphql.MarshalBoolean(m.Approved), true
	case "createdBy":
		return marshalUUID(m.CreatedBy), true
	case "createdByName":
		return marshalName(names, m.CreatedBy), true
	case "createdAt":
		return marshalDateTime(m.CreatedAt), true
	case "updatedAt":
		return marshalDateTime(m.UpdatedAt), true
	case "version":
		return graphql.MarshalInt(m.Version), true
	case "suggestions":
		out := make(graphql.Array, 0, len(m.Suggestions))
		for _, s := range m.Suggestions {
			out = append(out, ec.marshalSuggestion(s, names, sel))
		}
		return out, true
	}
	return nil, false
}

func (ec *executionContext) marshalSuggestion(s domain.Suggestion, names map[uuid.UUID]string, sel ast.SelectionSet) graphql.Marshaler {
	return ec.object("Suggestion", sel, func(name string, _ ast.SelectionSet) graphql.Marshaler {
		switch name {
		case "hash":
			return graphql.MarshalString(s.Hash())
		case "field":
			return graphql.MarshalString(s.Field.String())
		case "language":
			if s.Language == "" {
				return graphql.Null
			}
			return graphql.MarshalString(s.Language)
		case "value":
			return graphql.MarshalString(s.Value)
		case "createdBy":
			return marshalUUID(s.CreatedBy)
		case "createdByName":
			return marshalName(names, s.CreatedBy)
		case "createdAt":
			return marshalDateTime(s.CreatedAt)
		}
		return graphql.Null
	})
}

func sortedLanguages[V any](m map[string]V) []string {
	langs := make([]string, 0, len(m))
	for l := range m {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

func (ec *executionContext) marshalGlossaryEntry(e *domain.GlossaryEntry, names map[uuid.UUID]string, sel ast.SelectionSet) graphql.Marshaler {
	return ec.object("GlossaryEntry", sel, func(name string, sel ast.SelectionSet) graphql.Marshaler {
		switch name {
		case "id":
			return marshalUUID(e.ID)
		case "phrase":
			return graphql.MarshalString(e.Phrase)
		case "pinyin":
			return marshalOptString(e.Pinyin)
		case "category":
			return marshalOptString(e.Category)
		case "explanations":
			out := make(graphql.Array, 0, len(e.Explanations))
			for _, lang := range sortedLanguages(e.Explanations) {
				text := e.Explanations[lang]
				out = append(out, ec.object("Explanation", sel, func(name string, _ ast.SelectionSet) graphql.Marshaler {
					if name == "language" {
						return graphql.MarshalString(lang)
					}
					return graphql.MarshalString(text)
				}))
			}
			return out
		}
		v, _ := ec.moderationField(&e.Moderation, names, name, sel)
		return v
	})
}

func (ec *executionContext) marshalDish(d *domain.Dish, names map[uuid.UUID]string, sel ast.SelectionSet) graphql.Marshaler {
	return ec.object("Dish", sel, func(name string, sel ast.SelectionSet) graphql.Marshaler {
		switch name {
		case "id":
			return marshalUUID(d.ID)
		case "origin":
			return marshalOptString(d.Origin)
		case "likes":
			return graphql.MarshalInt64(d.Likes)
		case "translations":
			out := make(graphql.Array, 0, len(d.Translations))
			for _, lang := range sortedLanguages(d.Translations) {
				tr := d.Translations[lang]
				out = append(out, ec.object("DishTranslation", sel, func(name string, _ ast.SelectionSet) graphql.Marshaler {
					switch name {
					case "language":
						return graphql.MarshalString(lang)
					case "name":
						return graphql.MarshalString(tr.Name)
					case "description":
						return marshalOptString(tr.Description)
					case "recipe":
						return marshalOptString(tr.Recipe)
					}
					return graphql.Null
				}))
			}
			return out
		}
		v, _ := ec.moderationField(&d.Moderation, names, name, sel)
		return v
	})
}

// glossaryEntries renders entries, resolving all their authors in one batch.
func (ec *executionContext) glossaryEntries(ctx context.Context, sel ast.SelectionSet, entries ...*domain.GlossaryEntry) ([]graphql.Marshaler, error) {
	states := make([]*domain.Moderation, 0, len(entries))
	for _, e := range entries {
		states = append(states, &e.Moderation)
	}
	names, err := loader.AuthorNames(ctx, states...)
	if err != nil {
		return nil, err
	}
	out := make([]graphql.Marshaler, 0, len(entries))
	for _, e := range entries {
		out = append(out, ec.marshalGlossaryEntry(e, names, sel))
	}
	return out, nil
}

// dishes renders dishes, resolving all their authors in one batch.
func (ec *executionContext) dishes(ctx context.Context, sel ast.SelectionSet, dishes ...*domain.Dish) ([]graphql.Marshaler, error) {
	states := make([]*domain.Moderation, 0, len(dishes))
	for _, d := range dishes {
		states = append(states, &d.Moderation)
	}
	names, err := loader.AuthorNames(ctx, states...)
	if err != nil {
		return nil, err
	}
	out := make([]graphql.Marshaler, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, ec.marshalDish(d, names, sel))
	}
	return out, nil
}

func (ec *executionContext) marshalPoll(p *domain.Poll, sel ast.SelectionSet) graphql.Marshaler {
	return ec.object("Poll", sel, func(name string, _ ast.SelectionSet) graphql.Marshaler {
		switch name {
		case "id":
			return marshalUUID(p.ID)
		case "contextId":
			return marshalUUID(p.ContextID)
		case "club":
			return graphql.MarshalString(p.Club.String())
		case "closesAt":
			return marshalDateTime(p.ClosesAt)
		case "isClosed":
			return graphql.MarshalBoolean(p.IsClosed)
		case "isOpen":
			return graphql.MarshalBoolean(p.IsOpen(ec.resolver.now()))
		case "createdAt":
			return marshalDateTime(p.CreatedAt)
		case "createdBy":
			return marshalUUID(p.CreatedBy)
		}
		return graphql.Null
	})
}

func (ec *executionContext) marshalBallot(b *domain.Ballot, sel ast.SelectionSet) graphql.Marshaler {
	return ec.object("Ballot", sel, func(name string, _ ast.SelectionSet) graphql.Marshaler {
		switch name {
		case "id":
			return marshalUUID(b.ID)
		case "pollId":
			return marshalUUID(b.PollID)
		case "choiceId":
			return marshalUUID(b.ChoiceID)
		case "memberId":
			return marshalUUID(b.MemberID)
		case "createdAt":
			return marshalDateTime(b.CreatedAt)
		}
		return graphql.Null
	})
}

func (ec *executionContext) marshalTally(r *poll.Results, sel ast.SelectionSet) graphql.Marshaler {
	return ec.object("Tally", sel, func(name string, sel ast.SelectionSet) graphql.Marshaler {
		switch name {
		case "poll":
			return ec.marshalPoll(r.Poll, sel)
		case "winner":
			if r.Winner == nil {
				return graphql.Null
			}
			return marshalUUID(*r.Winner)
		case "total":
			return graphql.MarshalInt(r.Total)
		case "results":
			out := make(graphql.Array, 0, len(r.Counts))
			for _, c := range r.Counts {
				out = append(out, ec.object("ChoiceCount", sel, func(name string, _ ast.SelectionSet) graphql.Marshaler {
					if name == "choiceId" {
						return marshalUUID(c.ChoiceID)
					}
					return graphql.MarshalInt(c.Votes)
				}))
			}
			return out
		}
		return graphql.Null
	})
}

// marshalEditResult renders a GlossaryEditResult or DishEditResult. record
// renders the edited record under recordField.
func (ec *executionContext) marshalEditResult(typeName, recordField string, record func(sel ast.SelectionSet) graphql.Marshaler, applied []domain.Field, suggested []string, sel ast.SelectionSet) graphql.Marshaler {
	return ec.object(typeName, sel, func(name string, sel ast.SelectionSet) graphql.Marshaler {
		switch name {
		case recordField:
			return record(sel)
		case "applied":
			fields := make([]string, 0, len(applied))
			for _, f := range applied {
				fields = append(fields, f.String())
			}
			return marshalStrings(fields)
		case "suggested":
			return marshalStrings(suggested)
		}
		return graphql.Null
	})
}
