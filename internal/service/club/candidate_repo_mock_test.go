package club

import (
	"context"
	"sync"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

var _ candidateRepo = &candidateRepoMock{}

type candidateRepoMock struct {
	CreateFunc     func(ctx context.Context, c *domain.Candidate) error
	ListByClubFunc func(ctx context.Context, club domain.Club) ([]domain.Candidate, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Candidate
		}
		ListByClub []struct {
			Ctx  context.Context
			Club domain.Club
		}
	}
	lockCreate     sync.RWMutex
	lockListByClub sync.RWMutex
}

func (mock *candidateRepoMock) Create(ctx context.Context, c *domain.Candidate) error {
	if mock.CreateFunc == nil {
		panic("candidateRepoMock.CreateFunc: method is nil but candidateRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Candidate
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *candidateRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Candidate
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *candidateRepoMock) ListByClub(ctx context.Context, club domain.Club) ([]domain.Candidate, error) {
	if mock.ListByClubFunc == nil {
		panic("candidateRepoMock.ListByClubFunc: method is nil but candidateRepo.ListByClub was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Club domain.Club
	}{Ctx: ctx, Club: club}
	mock.lockListByClub.Lock()
	mock.calls.ListByClub = append(mock.calls.ListByClub, callInfo)
	mock.lockListByClub.Unlock()
	return mock.ListByClubFunc(ctx, club)
}

func (mock *candidateRepoMock) ListByClubCalls() []struct {
	Ctx  context.Context
	Club domain.Club
} {
	mock.lockListByClub.RLock()
	calls := mock.calls.ListByClub
	mock.lockListByClub.RUnlock()
	return calls
}
