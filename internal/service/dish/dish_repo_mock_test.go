package dish

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

var _ dishRepo = &dishRepoMock{}

type dishRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Dish, error)
	ListFunc           func(ctx context.Context, f domain.RecordFilter) ([]*domain.Dish, error)
	ListPendingFunc    func(ctx context.Context, limit int) ([]*domain.Dish, error)
	CreateFunc         func(ctx context.Context, d *domain.Dish) error
	SaveFunc           func(ctx context.Context, d *domain.Dish) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	IncrementLikesFunc func(ctx context.Context, id uuid.UUID) (int64, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.RecordFilter
		}
		ListPending []struct {
			Ctx   context.Context
			Limit int
		}
		Create []struct {
			Ctx context.Context
			D   *domain.Dish
		}
		Save []struct {
			Ctx context.Context
			D   *domain.Dish
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		IncrementLikes []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID        sync.RWMutex
	lockList           sync.RWMutex
	lockListPending    sync.RWMutex
	lockCreate         sync.RWMutex
	lockSave           sync.RWMutex
	lockDelete         sync.RWMutex
	lockIncrementLikes sync.RWMutex
}

func (mock *dishRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	if mock.GetByIDFunc == nil {
		panic("dishRepoMock.GetByIDFunc: method is nil but dishRepo.GetByID was just called")
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

func (mock *dishRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *dishRepoMock) List(ctx context.Context, f domain.RecordFilter) ([]*domain.Dish, error) {
	if mock.ListFunc == nil {
		panic("dishRepoMock.ListFunc: method is nil but dishRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.RecordFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *dishRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.RecordFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *dishRepoMock) ListPending(ctx context.Context, limit int) ([]*domain.Dish, error) {
	if mock.ListPendingFunc == nil {
		panic("dishRepoMock.ListPendingFunc: method is nil but dishRepo.ListPending was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx, limit)
}

func (mock *dishRepoMock) ListPendingCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListPending.RLock()
	calls := mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *dishRepoMock) Create(ctx context.Context, d *domain.Dish) error {
	if mock.CreateFunc == nil {
		panic("dishRepoMock.CreateFunc: method is nil but dishRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Dish
	}{Ctx: ctx, D: d}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *dishRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   *domain.Dish
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *dishRepoMock) Save(ctx context.Context, d *domain.Dish) error {
	if mock.SaveFunc == nil {
		panic("dishRepoMock.SaveFunc: method is nil but dishRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Dish
	}{Ctx: ctx, D: d}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, d)
}

func (mock *dishRepoMock) SaveCalls() []struct {
	Ctx context.Context
	D   *domain.Dish
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *dishRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("dishRepoMock.DeleteFunc: method is nil but dishRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *dishRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *dishRepoMock) IncrementLikes(ctx context.Context, id uuid.UUID) (int64, error) {
	if mock.IncrementLikesFunc == nil {
		panic("dishRepoMock.IncrementLikesFunc: method is nil but dishRepo.IncrementLikes was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockIncrementLikes.Lock()
	mock.calls.IncrementLikes = append(mock.calls.IncrementLikes, callInfo)
	mock.lockIncrementLikes.Unlock()
	return mock.IncrementLikesFunc(ctx, id)
}

func (mock *dishRepoMock) IncrementLikesCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIncrementLikes.RLock()
	calls := mock.calls.IncrementLikes
	mock.lockIncrementLikes.RUnlock()
	return calls
}
