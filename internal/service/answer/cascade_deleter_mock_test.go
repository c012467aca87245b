package answer

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

var _ cascadeDeleter = &cascadeDeleterMock{}

type cascadeDeleterMock struct {
	DeleteAnswerFunc func(ctx context.Context, answerID uuid.UUID) (domain.CascadeReport, error)

	calls struct {
		DeleteAnswer []struct {
			Ctx      context.Context
			AnswerID uuid.UUID
		}
	}
	lockDeleteAnswer sync.RWMutex
}

func (mock *cascadeDeleterMock) DeleteAnswer(ctx context.Context, answerID uuid.UUID) (domain.CascadeReport, error) {
	if mock.DeleteAnswerFunc == nil {
		panic("cascadeDeleterMock.DeleteAnswerFunc: method is nil but cascadeDeleter.DeleteAnswer was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AnswerID uuid.UUID
	}{Ctx: ctx, AnswerID: answerID}
	mock.lockDeleteAnswer.Lock()
	mock.calls.DeleteAnswer = append(mock.calls.DeleteAnswer, callInfo)
	mock.lockDeleteAnswer.Unlock()
	return mock.DeleteAnswerFunc(ctx, answerID)
}

func (mock *cascadeDeleterMock) DeleteAnswerCalls() []struct {
	Ctx      context.Context
	AnswerID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		AnswerID uuid.UUID
	}
	mock.lockDeleteAnswer.RLock()
	calls = mock.calls.DeleteAnswer
	mock.lockDeleteAnswer.RUnlock()
	return calls
}
