package seeder

import (
	"context"
	"sync"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/question"
)

var _ questionCreator = &questionCreatorMock{}

type questionCreatorMock struct {
	CreateQuestionFunc func(ctx context.Context, input question.CreateQuestionInput) (*domain.Question, error)

	calls struct {
		CreateQuestion []struct {
			Ctx   context.Context
			Input question.CreateQuestionInput
		}
	}
	lockCreateQuestion sync.RWMutex
}

func (mock *questionCreatorMock) CreateQuestion(ctx context.Context, input question.CreateQuestionInput) (*domain.Question, error) {
	if mock.CreateQuestionFunc == nil {
		panic("questionCreatorMock.CreateQuestionFunc: method is nil but questionCreator.CreateQuestion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input question.CreateQuestionInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateQuestion.Lock()
	mock.calls.CreateQuestion = append(mock.calls.CreateQuestion, callInfo)
	mock.lockCreateQuestion.Unlock()
	return mock.CreateQuestionFunc(ctx, input)
}

func (mock *questionCreatorMock) CreateQuestionCalls() []struct {
	Ctx   context.Context
	Input question.CreateQuestionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input question.CreateQuestionInput
	}
	mock.lockCreateQuestion.RLock()
	calls = mock.calls.CreateQuestion
	mock.lockCreateQuestion.RUnlock()
	return calls
}
