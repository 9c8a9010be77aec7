package graphql

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/service/poll"
)

var _ pollService = &pollServiceMock{}

type pollServiceMock struct {
	GetFunc          func(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	GetByContextFunc func(ctx context.Context, contextID uuid.UUID) (*domain.Poll, error)
	CastBallotFunc   func(ctx context.Context, input poll.CastBallotInput) (*domain.Ballot, error)
	ClosePollFunc    func(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	ResultsFunc      func(ctx context.Context, id uuid.UUID) (*poll.Results, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByContext []struct {
			Ctx       context.Context
			ContextID uuid.UUID
		}
		CastBallot []struct {
			Ctx   context.Context
			Input poll.CastBallotInput
		}
		ClosePoll []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Results []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGet          sync.RWMutex
	lockGetByContext sync.RWMutex
	lockCastBallot   sync.RWMutex
	lockClosePoll    sync.RWMutex
	lockResults      sync.RWMutex
}

func (mock *pollServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	if mock.GetFunc == nil {
		panic("pollServiceMock.GetFunc: method is nil but pollService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *pollServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *pollServiceMock) GetByContext(ctx context.Context, contextID uuid.UUID) (*domain.Poll, error) {
	if mock.GetByContextFunc == nil {
		panic("pollServiceMock.GetByContextFunc: method is nil but pollService.GetByContext was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContextID uuid.UUID
	}{Ctx: ctx, ContextID: contextID}
	mock.lockGetByContext.Lock()
	mock.calls.GetByContext = append(mock.calls.GetByContext, callInfo)
	mock.lockGetByContext.Unlock()
	return mock.GetByContextFunc(ctx, contextID)
}

func (mock *pollServiceMock) GetByContextCalls() []struct {
	Ctx       context.Context
	ContextID uuid.UUID
} {
	mock.lockGetByContext.RLock()
	calls := mock.calls.GetByContext
	mock.lockGetByContext.RUnlock()
	return calls
}

func (mock *pollServiceMock) CastBallot(ctx context.Context, input poll.CastBallotInput) (*domain.Ballot, error) {
	if mock.CastBallotFunc == nil {
		panic("pollServiceMock.CastBallotFunc: method is nil but pollService.CastBallot was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input poll.CastBallotInput
	}{Ctx: ctx, Input: input}
	mock.lockCastBallot.Lock()
	mock.calls.CastBallot = append(mock.calls.CastBallot, callInfo)
	mock.lockCastBallot.Unlock()
	return mock.CastBallotFunc(ctx, input)
}

func (mock *pollServiceMock) CastBallotCalls() []struct {
	Ctx   context.Context
	Input poll.CastBallotInput
} {
	mock.lockCastBallot.RLock()
	calls := mock.calls.CastBallot
	mock.lockCastBallot.RUnlock()
	return calls
}

func (mock *pollServiceMock) ClosePoll(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	if mock.ClosePollFunc == nil {
		panic("pollServiceMock.ClosePollFunc: method is nil but pollService.ClosePoll was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockClosePoll.Lock()
	mock.calls.ClosePoll = append(mock.calls.ClosePoll, callInfo)
	mock.lockClosePoll.Unlock()
	return mock.ClosePollFunc(ctx, id)
}

func (mock *pollServiceMock) ClosePollCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockClosePoll.RLock()
	calls := mock.calls.ClosePoll
	mock.lockClosePoll.RUnlock()
	return calls
}

func (mock *pollServiceMock) Results(ctx context.Context, id uuid.UUID) (*poll.Results, error) {
	if mock.ResultsFunc == nil {
		panic("pollServiceMock.ResultsFunc: method is nil but pollService.Results was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockResults.Lock()
	mock.calls.Results = append(mock.calls.Results, callInfo)
	mock.lockResults.Unlock()
	return mock.ResultsFunc(ctx, id)
}

func (mock *pollServiceMock) ResultsCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockResults.RLock()
	calls := mock.calls.Results
	mock.lockResults.RUnlock()
	return calls
}
