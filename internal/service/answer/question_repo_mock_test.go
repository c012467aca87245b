package answer

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	GetByIDFunc func(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)

	calls struct {
		GetByID []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *questionRepoMock) GetByID(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	if mock.GetByIDFunc == nil {
		panic("questionRepoMock.GetByIDFunc: method is nil but questionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{Ctx: ctx, QuestionID: questionID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, questionID)
}

func (mock *questionRepoMock) GetByIDCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
