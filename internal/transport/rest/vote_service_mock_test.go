package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/vote"
)

var _ voteService = &voteServiceMock{}

type voteServiceMock struct {
	VoteFunc           func(ctx context.Context, input vote.VoteInput) (*domain.VoteSummary, error)
	GetVoteSummaryFunc func(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID) (*domain.VoteSummary, error)

	calls struct {
		Vote []struct {
			Ctx   context.Context
			Input vote.VoteInput
		}
		GetVoteSummary []struct {
			Ctx      context.Context
			Kind     domain.TargetKind
			TargetID uuid.UUID
		}
	}
	lockVote           sync.RWMutex
	lockGetVoteSummary sync.RWMutex
}

func (mock *voteServiceMock) Vote(ctx context.Context, input vote.VoteInput) (*domain.VoteSummary, error) {
	if mock.VoteFunc == nil {
		panic("voteServiceMock.VoteFunc: method is nil but voteService.Vote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vote.VoteInput
	}{Ctx: ctx, Input: input}
	mock.lockVote.Lock()
	mock.calls.Vote = append(mock.calls.Vote, callInfo)
	mock.lockVote.Unlock()
	return mock.VoteFunc(ctx, input)
}

func (mock *voteServiceMock) VoteCalls() []struct {
	Ctx   context.Context
	Input vote.VoteInput
} {
	var calls []struct {
		Ctx   context.Context
		Input vote.VoteInput
	}
	mock.lockVote.RLock()
	calls = mock.calls.Vote
	mock.lockVote.RUnlock()
	return calls
}

func (mock *voteServiceMock) GetVoteSummary(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID) (*domain.VoteSummary, error) {
	if mock.GetVoteSummaryFunc == nil {
		panic("voteServiceMock.GetVoteSummaryFunc: method is nil but voteService.GetVoteSummary was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Kind     domain.TargetKind
		TargetID uuid.UUID
	}{Ctx: ctx, Kind: kind, TargetID: targetID}
	mock.lockGetVoteSummary.Lock()
	mock.calls.GetVoteSummary = append(mock.calls.GetVoteSummary, callInfo)
	mock.lockGetVoteSummary.Unlock()
	return mock.GetVoteSummaryFunc(ctx, kind, targetID)
}

func (mock *voteServiceMock) GetVoteSummaryCalls() []struct {
	Ctx      context.Context
	Kind     domain.TargetKind
	TargetID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		Kind     domain.TargetKind
		TargetID uuid.UUID
	}
	mock.lockGetVoteSummary.RLock()
	calls = mock.calls.GetVoteSummary
	mock.lockGetVoteSummary.RUnlock()
	return calls
}
