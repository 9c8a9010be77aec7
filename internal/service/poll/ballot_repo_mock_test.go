package poll

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/clubhouse-backend/internal/domain"
)

var _ ballotRepo = &ballotRepoMock{}

type ballotRepoMock struct {
	FindByPollAndMemberFunc func(ctx context.Context, pollID uuid.UUID, memberID uuid.UUID) (*domain.Ballot, error)
	ListByPollFunc          func(ctx context.Context, pollID uuid.UUID) ([]domain.Ballot, error)
	CreateFunc              func(ctx context.Context, b *domain.Ballot) error

	calls struct {
		FindByPollAndMember []struct {
			Ctx      context.Context
			PollID   uuid.UUID
			MemberID uuid.UUID
		}
		ListByPoll []struct {
			Ctx    context.Context
			PollID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			B   *domain.Ballot
		}
	}
	lockFindByPollAndMember sync.RWMutex
	lockListByPoll          sync.RWMutex
	lockCreate              sync.RWMutex
}

func (mock *ballotRepoMock) FindByPollAndMember(ctx context.Context, pollID uuid.UUID, memberID uuid.UUID) (*domain.Ballot, error) {
	if mock.FindByPollAndMemberFunc == nil {
		panic("ballotRepoMock.FindByPollAndMemberFunc: method is nil but ballotRepo.FindByPollAndMember was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PollID   uuid.UUID
		MemberID uuid.UUID
	}{Ctx: ctx, PollID: pollID, MemberID: memberID}
	mock.lockFindByPollAndMember.Lock()
	mock.calls.FindByPollAndMember = append(mock.calls.FindByPollAndMember, callInfo)
	mock.lockFindByPollAndMember.Unlock()
	return mock.FindByPollAndMemberFunc(ctx, pollID, memberID)
}

func (mock *ballotRepoMock) FindByPollAndMemberCalls() []struct {
	Ctx      context.Context
	PollID   uuid.UUID
	MemberID uuid.UUID
} {
	mock.lockFindByPollAndMember.RLock()
	calls := mock.calls.FindByPollAndMember
	mock.lockFindByPollAndMember.RUnlock()
	return calls
}

func (mock *ballotRepoMock) ListByPoll(ctx context.Context, pollID uuid.UUID) ([]domain.Ballot, error) {
	if mock.ListByPollFunc == nil {
		panic("ballotRepoMock.ListByPollFunc: method is nil but ballotRepo.ListByPoll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PollID uuid.UUID
	}{Ctx: ctx, PollID: pollID}
	mock.lockListByPoll.Lock()
	mock.calls.ListByPoll = append(mock.calls.ListByPoll, callInfo)
	mock.lockListByPoll.Unlock()
	return mock.ListByPollFunc(ctx, pollID)
}

func (mock *ballotRepoMock) ListByPollCalls() []struct {
	Ctx    context.Context
	PollID uuid.UUID
} {
	mock.lockListByPoll.RLock()
	calls := mock.calls.ListByPoll
	mock.lockListByPoll.RUnlock()
	return calls
}

func (mock *ballotRepoMock) Create(ctx context.Context, b *domain.Ballot) error {
	if mock.CreateFunc == nil {
		panic("ballotRepoMock.CreateFunc: method is nil but ballotRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Ballot
	}{Ctx: ctx, B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *ballotRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   *domain.Ballot
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
