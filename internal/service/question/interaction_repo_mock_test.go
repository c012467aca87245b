package question

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

var _ interactionRepo = &interactionRepoMock{}

type interactionRepoMock struct {
	RecordFunc         func(ctx context.Context, in domain.Interaction) (uuid.UUID, error)
	RecordViewOnceFunc func(ctx context.Context, in domain.Interaction) (bool, error)

	calls struct {
		Record []struct {
			Ctx context.Context
			In  domain.Interaction
		}
		RecordViewOnce []struct {
			Ctx context.Context
			In  domain.Interaction
		}
	}
	lockRecord         sync.RWMutex
	lockRecordViewOnce sync.RWMutex
}

func (mock *interactionRepoMock) Record(ctx context.Context, in domain.Interaction) (uuid.UUID, error) {
	if mock.RecordFunc == nil {
		panic("interactionRepoMock.RecordFunc: method is nil but interactionRepo.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.Interaction
	}{Ctx: ctx, In: in}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, in)
}

func (mock *interactionRepoMock) RecordCalls() []struct {
	Ctx context.Context
	In  domain.Interaction
} {
	var calls []struct {
		Ctx context.Context
		In  domain.Interaction
	}
	mock.lockRecord.RLock()
	calls = mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

func (mock *interactionRepoMock) RecordViewOnce(ctx context.Context, in domain.Interaction) (bool, error) {
	if mock.RecordViewOnceFunc == nil {
		panic("interactionRepoMock.RecordViewOnceFunc: method is nil but interactionRepo.RecordViewOnce was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.Interaction
	}{Ctx: ctx, In: in}
	mock.lockRecordViewOnce.Lock()
	mock.calls.RecordViewOnce = append(mock.calls.RecordViewOnce, callInfo)
	mock.lockRecordViewOnce.Unlock()
	return mock.RecordViewOnceFunc(ctx, in)
}

func (mock *interactionRepoMock) RecordViewOnceCalls() []struct {
	Ctx context.Context
	In  domain.Interaction
} {
	var calls []struct {
		Ctx context.Context
		In  domain.Interaction
	}
	mock.lockRecordViewOnce.RLock()
	calls = mock.calls.RecordViewOnce
	mock.lockRecordViewOnce.RUnlock()
	return calls
}
