package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/techflow-backend/internal/service/assistant"
)

var _ assistantService = &assistantServiceMock{}

type assistantServiceMock struct {
	GenerateAnswerFunc func(ctx context.Context, input assistant.GenerateAnswerInput) (string, error)

	calls struct {
		GenerateAnswer []struct {
			Ctx   context.Context
			Input assistant.GenerateAnswerInput
		}
	}
	lockGenerateAnswer sync.RWMutex
}

func (mock *assistantServiceMock) GenerateAnswer(ctx context.Context, input assistant.GenerateAnswerInput) (string, error) {
	if mock.GenerateAnswerFunc == nil {
		panic("assistantServiceMock.GenerateAnswerFunc: method is nil but assistantService.GenerateAnswer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input assistant.GenerateAnswerInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerateAnswer.Lock()
	mock.calls.GenerateAnswer = append(mock.calls.GenerateAnswer, callInfo)
	mock.lockGenerateAnswer.Unlock()
	return mock.GenerateAnswerFunc(ctx, input)
}

func (mock *assistantServiceMock) GenerateAnswerCalls() []struct {
	Ctx   context.Context
	Input assistant.GenerateAnswerInput
} {
	var calls []struct {
		Ctx   context.Context
		Input assistant.GenerateAnswerInput
	}
	mock.lockGenerateAnswer.RLock()
	calls = mock.calls.GenerateAnswer
	mock.lockGenerateAnswer.RUnlock()
	return calls
}
