package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/clubhouse-backend/internal/domain"
	"github.com/heartmarshall/clubhouse-backend/internal/service/club"
)

var _ clubService = &clubServiceMock{}

type clubServiceMock struct {
	SuggestCandidateFunc func(ctx context.Context, input club.SuggestCandidateInput) (*domain.Candidate, error)
	ListCandidatesFunc   func(ctx context.Context, c domain.Club) ([]domain.Candidate, error)

	calls struct {
		SuggestCandidate []struct {
			Ctx   context.Context
			Input club.SuggestCandidateInput
		}
		ListCandidates []struct {
			Ctx context.Context
			C   domain.Club
		}
	}
	lockSuggestCandidate sync.RWMutex
	lockListCandidates   sync.RWMutex
}

func (mock *clubServiceMock) SuggestCandidate(ctx context.Context, input club.SuggestCandidateInput) (*domain.Candidate, error) {
	if mock.SuggestCandidateFunc == nil {
		panic("clubServiceMock.SuggestCandidateFunc: method is nil but clubService.SuggestCandidate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input club.SuggestCandidateInput
	}{Ctx: ctx, Input: input}
	mock.lockSuggestCandidate.Lock()
	mock.calls.SuggestCandidate = append(mock.calls.SuggestCandidate, callInfo)
	mock.lockSuggestCandidate.Unlock()
	return mock.SuggestCandidateFunc(ctx, input)
}

func (mock *clubServiceMock) SuggestCandidateCalls() []struct {
	Ctx   context.Context
	Input club.SuggestCandidateInput
} {
	mock.lockSuggestCandidate.RLock()
	calls := mock.calls.SuggestCandidate
	mock.lockSuggestCandidate.RUnlock()
	return calls
}

func (mock *clubServiceMock) ListCandidates(ctx context.Context, c domain.Club) ([]domain.Candidate, error) {
	if mock.ListCandidatesFunc == nil {
		panic("clubServiceMock.ListCandidatesFunc: method is nil but clubService.ListCandidates was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Club
	}{Ctx: ctx, C: c}
	mock.lockListCandidates.Lock()
	mock.calls.ListCandidates = append(mock.calls.ListCandidates, callInfo)
	mock.lockListCandidates.Unlock()
	return mock.ListCandidatesFunc(ctx, c)
}

func (mock *clubServiceMock) ListCandidatesCalls() []struct {
	Ctx context.Context
	C   domain.Club
} {
	mock.lockListCandidates.RLock()
	calls := mock.calls.ListCandidates
	mock.lockListCandidates.RUnlock()
	return calls
}
