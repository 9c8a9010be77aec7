package graphql

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/service/glossary"
)

var _ glossaryService = &glossaryServiceMock{}

type glossaryServiceMock struct {
	GetFunc             func(ctx context.Context, id uuid.UUID) (*domain.GlossaryEntry, error)
	ListFunc            func(ctx context.Context, input glossary.ListInput) ([]*domain.GlossaryEntry, error)
	PendingQueueFunc    func(ctx context.Context, limit int) ([]*domain.GlossaryEntry, error)
	ProposeEditFunc     func(ctx context.Context, input glossary.EditInput) (*glossary.EditResult, error)
	ApplySuggestionFunc func(ctx context.Context, id uuid.UUID, handle string) (int, error)
	DenySuggestionFunc  func(ctx context.Context, id uuid.UUID, handle string) (int, error)
	ApproveFunc         func(ctx context.Context, id uuid.UUID) (*domain.GlossaryEntry, error)
	RejectFunc          func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input glossary.ListInput
		}
		PendingQueue []struct {
			Ctx   context.Context
			Limit int
		}
		ProposeEdit []struct {
			Ctx   context.Context
			Input glossary.EditInput
		}
		ApplySuggestion []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Handle string
		}
		DenySuggestion []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Handle string
		}
		Approve []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Reject []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGet             sync.RWMutex
	lockList            sync.RWMutex
	lockPendingQueue    sync.RWMutex
	lockProposeEdit     sync.RWMutex
	lockApplySuggestion sync.RWMutex
	lockDenySuggestion  sync.RWMutex
	lockApprove         sync.RWMutex
	lockReject          sync.RWMutex
}

func (mock *glossaryServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.GlossaryEntry, error) {
	if mock.GetFunc == nil {
		panic("glossaryServiceMock.GetFunc: method is nil but glossaryService.Get was just called")
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

func (mock *glossaryServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) List(ctx context.Context, input glossary.ListInput) ([]*domain.GlossaryEntry, error) {
	if mock.ListFunc == nil {
		panic("glossaryServiceMock.ListFunc: method is nil but glossaryService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input glossary.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *glossaryServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input glossary.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) PendingQueue(ctx context.Context, limit int) ([]*domain.GlossaryEntry, error) {
	if mock.PendingQueueFunc == nil {
		panic("glossaryServiceMock.PendingQueueFunc: method is nil but glossaryService.PendingQueue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockPendingQueue.Lock()
	mock.calls.PendingQueue = append(mock.calls.PendingQueue, callInfo)
	mock.lockPendingQueue.Unlock()
	return mock.PendingQueueFunc(ctx, limit)
}

func (mock *glossaryServiceMock) PendingQueueCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockPendingQueue.RLock()
	calls := mock.calls.PendingQueue
	mock.lockPendingQueue.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) ProposeEdit(ctx context.Context, input glossary.EditInput) (*glossary.EditResult, error) {
	if mock.ProposeEditFunc == nil {
		panic("glossaryServiceMock.ProposeEditFunc: method is nil but glossaryService.ProposeEdit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input glossary.EditInput
	}{Ctx: ctx, Input: input}
	mock.lockProposeEdit.Lock()
	mock.calls.ProposeEdit = append(mock.calls.ProposeEdit, callInfo)
	mock.lockProposeEdit.Unlock()
	return mock.ProposeEditFunc(ctx, input)
}

func (mock *glossaryServiceMock) ProposeEditCalls() []struct {
	Ctx   context.Context
	Input glossary.EditInput
} {
	mock.lockProposeEdit.RLock()
	calls := mock.calls.ProposeEdit
	mock.lockProposeEdit.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) ApplySuggestion(ctx context.Context, id uuid.UUID, handle string) (int, error) {
	if mock.ApplySuggestionFunc == nil {
		panic("glossaryServiceMock.ApplySuggestionFunc: method is nil but glossaryService.ApplySuggestion was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Handle string
	}{Ctx: ctx, ID: id, Handle: handle}
	mock.lockApplySuggestion.Lock()
	mock.calls.ApplySuggestion = append(mock.calls.ApplySuggestion, callInfo)
	mock.lockApplySuggestion.Unlock()
	return mock.ApplySuggestionFunc(ctx, id, handle)
}

func (mock *glossaryServiceMock) ApplySuggestionCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Handle string
} {
	mock.lockApplySuggestion.RLock()
	calls := mock.calls.ApplySuggestion
	mock.lockApplySuggestion.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) DenySuggestion(ctx context.Context, id uuid.UUID, handle string) (int, error) {
	if mock.DenySuggestionFunc == nil {
		panic("glossaryServiceMock.DenySuggestionFunc: method is nil but glossaryService.DenySuggestion was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Handle string
	}{Ctx: ctx, ID: id, Handle: handle}
	mock.lockDenySuggestion.Lock()
	mock.calls.DenySuggestion = append(mock.calls.DenySuggestion, callInfo)
	mock.lockDenySuggestion.Unlock()
	return mock.DenySuggestionFunc(ctx, id, handle)
}

func (mock *glossaryServiceMock) DenySuggestionCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Handle string
} {
	mock.lockDenySuggestion.RLock()
	calls := mock.calls.DenySuggestion
	mock.lockDenySuggestion.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) Approve(ctx context.Context, id uuid.UUID) (*domain.GlossaryEntry, error) {
	if mock.ApproveFunc == nil {
		panic("glossaryServiceMock.ApproveFunc: method is nil but glossaryService.Approve was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockApprove.Lock()
	mock.calls.Approve = append(mock.calls.Approve, callInfo)
	mock.lockApprove.Unlock()
	return mock.ApproveFunc(ctx, id)
}

func (mock *glossaryServiceMock) ApproveCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockApprove.RLock()
	calls := mock.calls.Approve
	mock.lockApprove.RUnlock()
	return calls
}

func (mock *glossaryServiceMock) Reject(ctx context.Context, id uuid.UUID) error {
	if mock.RejectFunc == nil {
		panic("glossaryServiceMock.RejectFunc: method is nil but glossaryService.Reject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockReject.Lock()
	mock.calls.Reject = append(mock.calls.Reject, callInfo)
	mock.lockReject.Unlock()
	return mock.RejectFunc(ctx, id)
}

func (mock *glossaryServiceMock) RejectCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockReject.RLock()
	calls := mock.calls.Reject
	mock.lockReject.RUnlock()
	return calls
}
