package poll

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

var _ candidateRepo = &candidateRepoMock{}

type candidateRepoMock struct {
	ExistsFunc func(ctx context.Context, id uuid.UUID, club domain.Club) (bool, error)

	calls struct {
		Exists []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Club domain.Club
		}
	}
	lockExists sync.RWMutex
}

func (mock *candidateRepoMock) Exists(ctx context.Context, id uuid.UUID, club domain.Club) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("candidateRepoMock.ExistsFunc: method is nil but candidateRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Club domain.Club
	}{Ctx: ctx, ID: id, Club: club}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id, club)
}

func (mock *candidateRepoMock) ExistsCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Club domain.Club
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}
