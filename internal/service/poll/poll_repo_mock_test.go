package poll

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

var _ pollRepo = &pollRepoMock{}

type pollRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	GetByContextIDFunc func(ctx context.Context, contextID uuid.UUID) (*domain.Poll, error)
	CreateFunc         func(ctx context.Context, p *domain.Poll) error
	SaveFunc           func(ctx context.Context, p *domain.Poll) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByContextID []struct {
			Ctx       context.Context
			ContextID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			P   *domain.Poll
		}
		Save []struct {
			Ctx context.Context
			P   *domain.Poll
		}
	}
	lockGetByID        sync.RWMutex
	lockGetByContextID sync.RWMutex
	lockCreate         sync.RWMutex
	lockSave           sync.RWMutex
}

func (mock *pollRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	if mock.GetByIDFunc == nil {
		panic("pollRepoMock.GetByIDFunc: method is nil but pollRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *pollRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *pollRepoMock) GetByContextID(ctx context.Context, contextID uuid.UUID) (*domain.Poll, error) {
	if mock.GetByContextIDFunc == nil {
		panic("pollRepoMock.GetByContextIDFunc: method is nil but pollRepo.GetByContextID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContextID uuid.UUID
	}{Ctx: ctx, ContextID: contextID}
	mock.lockGetByContextID.Lock()
	mock.calls.GetByContextID = append(mock.calls.GetByContextID, callInfo)
	mock.lockGetByContextID.Unlock()
	return mock.GetByContextIDFunc(ctx, contextID)
}

func (mock *pollRepoMock) GetByContextIDCalls() []struct {
	Ctx       context.Context
	ContextID uuid.UUID
} {
	mock.lockGetByContextID.RLock()
	calls := mock.calls.GetByContextID
	mock.lockGetByContextID.RUnlock()
	return calls
}

func (mock *pollRepoMock) Create(ctx context.Context, p *domain.Poll) error {
	if mock.CreateFunc == nil {
		panic("pollRepoMock.CreateFunc: method is nil but pollRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Poll
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *pollRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Poll
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *pollRepoMock) Save(ctx context.Context, p *domain.Poll) error {
	if mock.SaveFunc == nil {
		panic("pollRepoMock.SaveFunc: method is nil but pollRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Poll
	}{Ctx: ctx, P: p}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, p)
}

func (mock *pollRepoMock) SaveCalls() []struct {
	Ctx context.Context
	P   *domain.Poll
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
