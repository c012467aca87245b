package vote

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	TargetAuthorFunc     func(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID) (uuid.UUID, error)
	CurrentDirectionFunc func(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID, userID uuid.UUID) (domain.VoteDirection, error)
	ApplyFunc            func(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID, userID uuid.UUID, tr domain.VoteTransition) error
	TallyFunc            func(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID, userID uuid.UUID) (domain.VoteSummary, error)

	calls struct {
		TargetAuthor []struct {
			Ctx      context.Context
			Kind     domain.TargetKind
			TargetID uuid.UUID
		}
		CurrentDirection []struct {
			Ctx      context.Context
			Kind     domain.TargetKind
			TargetID uuid.UUID
			UserID   uuid.UUID
		}
		Apply []struct {
			Ctx      context.Context
			Kind     domain.TargetKind
			TargetID uuid.UUID
			UserID   uuid.UUID
			Tr       domain.VoteTransition
		}
		Tally []struct {
			Ctx      context.Context
			Kind     domain.TargetKind
			TargetID uuid.UUID
			UserID   uuid.UUID
		}
	}
	lockTargetAuthor     sync.RWMutex
	lockCurrentDirection sync.RWMutex
	lockApply            sync.RWMutex
	lockTally            sync.RWMutex
}

func (mock *voteRepoMock) TargetAuthor(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID) (uuid.UUID, error) {
	if mock.TargetAuthorFunc == nil {
		panic("voteRepoMock.TargetAuthorFunc: method is nil but voteRepo.TargetAuthor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Kind     domain.TargetKind
		TargetID uuid.UUID
	}{Ctx: ctx, Kind: kind, TargetID: targetID}
	mock.lockTargetAuthor.Lock()
	mock.calls.TargetAuthor = append(mock.calls.TargetAuthor, callInfo)
	mock.lockTargetAuthor.Unlock()
	return mock.TargetAuthorFunc(ctx, kind, targetID)
}

func (mock *voteRepoMock) TargetAuthorCalls() []struct {
	Ctx      context.Context
	Kind     domain.TargetKind
	TargetID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		Kind     domain.TargetKind
		TargetID uuid.UUID
	}
	mock.lockTargetAuthor.RLock()
	calls = mock.calls.TargetAuthor
	mock.lockTargetAuthor.RUnlock()
	return calls
}

func (mock *voteRepoMock) CurrentDirection(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID, userID uuid.UUID) (domain.VoteDirection, error) {
	if mock.CurrentDirectionFunc == nil {
		panic("voteRepoMock.CurrentDirectionFunc: method is nil but voteRepo.CurrentDirection was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Kind     domain.TargetKind
		TargetID uuid.UUID
		UserID   uuid.UUID
	}{Ctx: ctx, Kind: kind, TargetID: targetID, UserID: userID}
	mock.lockCurrentDirection.Lock()
	mock.calls.CurrentDirection = append(mock.calls.CurrentDirection, callInfo)
	mock.lockCurrentDirection.Unlock()
	return mock.CurrentDirectionFunc(ctx, kind, targetID, userID)
}

func (mock *voteRepoMock) CurrentDirectionCalls() []struct {
	Ctx      context.Context
	Kind     domain.TargetKind
	TargetID uuid.UUID
	UserID   uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		Kind     domain.TargetKind
		TargetID uuid.UUID
		UserID   uuid.UUID
	}
	mock.lockCurrentDirection.RLock()
	calls = mock.calls.CurrentDirection
	mock.lockCurrentDirection.RUnlock()
	return calls
}

func (mock *voteRepoMock) Apply(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID, userID uuid.UUID, tr domain.VoteTransition) error {
	if mock.ApplyFunc == nil {
		panic("voteRepoMock.ApplyFunc: method is nil but voteRepo.Apply was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Kind     domain.TargetKind
		TargetID uuid.UUID
		UserID   uuid.UUID
		Tr       domain.VoteTransition
	}{Ctx: ctx, Kind: kind, TargetID: targetID, UserID: userID, Tr: tr}
	mock.lockApply.Lock()
	mock.calls.Apply = append(mock.calls.Apply, callInfo)
	mock.lockApply.Unlock()
	return mock.ApplyFunc(ctx, kind, targetID, userID, tr)
}

func (mock *voteRepoMock) ApplyCalls() []struct {
	Ctx      context.Context
	Kind     domain.TargetKind
	TargetID uuid.UUID
	UserID   uuid.UUID
	Tr       domain.VoteTransition
} {
	var calls []struct {
		Ctx      context.Context
		Kind     domain.TargetKind
		TargetID uuid.UUID
		UserID   uuid.UUID
		Tr       domain.VoteTransition
	}
	mock.lockApply.RLock()
	calls = mock.calls.Apply
	mock.lockApply.RUnlock()
	return calls
}

func (mock *voteRepoMock) Tally(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID, userID uuid.UUID) (domain.VoteSummary, error) {
	if mock.TallyFunc == nil {
		panic("voteRepoMock.TallyFunc: method is nil but voteRepo.Tally was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Kind     domain.TargetKind
		TargetID uuid.UUID
		UserID   uuid.UUID
	}{Ctx: ctx, Kind: kind, TargetID: targetID, UserID: userID}
	mock.lockTally.Lock()
	mock.calls.Tally = append(mock.calls.Tally, callInfo)
	mock.lockTally.Unlock()
	return mock.TallyFunc(ctx, kind, targetID, userID)
}

func (mock *voteRepoMock) TallyCalls() []struct {
	Ctx      context.Context
	Kind     domain.TargetKind
	TargetID uuid.UUID
	UserID   uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		Kind     domain.TargetKind
		TargetID uuid.UUID
		UserID   uuid.UUID
	}
	mock.lockTally.RLock()
	calls = mock.calls.Tally
	mock.lockTally.RUnlock()
	return calls
}
