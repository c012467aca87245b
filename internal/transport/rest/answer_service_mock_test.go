package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/answer"
)

var _ answerService = &answerServiceMock{}

type answerServiceMock struct {
	CreateAnswerFunc func(ctx context.Context, input answer.CreateAnswerInput) (*domain.Answer, error)
	EditAnswerFunc   func(ctx context.Context, input answer.EditAnswerInput) (*domain.Answer, error)
	DeleteAnswerFunc func(ctx context.Context, answerID uuid.UUID) (domain.CascadeReport, error)
	ListAnswersFunc  func(ctx context.Context, input answer.ListAnswersInput) (domain.Page[domain.AnswerSummary], error)

	calls struct {
		CreateAnswer []struct {
			Ctx   context.Context
			Input answer.CreateAnswerInput
		}
		EditAnswer []struct {
			Ctx   context.Context
			Input answer.EditAnswerInput
		}
		DeleteAnswer []struct {
			Ctx      context.Context
			AnswerID uuid.UUID
		}
		ListAnswers []struct {
			Ctx   context.Context
			Input answer.ListAnswersInput
		}
	}
	lockCreateAnswer sync.RWMutex
	lockEditAnswer   sync.RWMutex
	lockDeleteAnswer sync.RWMutex
	lockListAnswers  sync.RWMutex
}

func (mock *answerServiceMock) CreateAnswer(ctx context.Context, input answer.CreateAnswerInput) (*domain.Answer, error) {
	if mock.CreateAnswerFunc == nil {
		panic("answerServiceMock.CreateAnswerFunc: method is nil but answerService.CreateAnswer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input answer.CreateAnswerInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateAnswer.Lock()
	mock.calls.CreateAnswer = append(mock.calls.CreateAnswer, callInfo)
	mock.lockCreateAnswer.Unlock()
	return mock.CreateAnswerFunc(ctx, input)
}

func (mock *answerServiceMock) CreateAnswerCalls() []struct {
	Ctx   context.Context
	Input answer.CreateAnswerInput
} {
	var calls []struct {
		Ctx   context.Context
		Input answer.CreateAnswerInput
	}
	mock.lockCreateAnswer.RLock()
	calls = mock.calls.CreateAnswer
	mock.lockCreateAnswer.RUnlock()
	return calls
}

func (mock *answerServiceMock) EditAnswer(ctx context.Context, input answer.EditAnswerInput) (*domain.Answer, error) {
	if mock.EditAnswerFunc == nil {
		panic("answerServiceMock.EditAnswerFunc: method is nil but answerService.EditAnswer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input answer.EditAnswerInput
	}{Ctx: ctx, Input: input}
	mock.lockEditAnswer.Lock()
	mock.calls.EditAnswer = append(mock.calls.EditAnswer, callInfo)
	mock.lockEditAnswer.Unlock()
	return mock.EditAnswerFunc(ctx, input)
}

func (mock *answerServiceMock) EditAnswerCalls() []struct {
	Ctx   context.Context
	Input answer.EditAnswerInput
} {
	var calls []struct {
		Ctx   context.Context
		Input answer.EditAnswerInput
	}
	mock.lockEditAnswer.RLock()
	calls = mock.calls.EditAnswer
	mock.lockEditAnswer.RUnlock()
	return calls
}

func (mock *answerServiceMock) DeleteAnswer(ctx context.Context, answerID uuid.UUID) (domain.CascadeReport, error) {
	if mock.DeleteAnswerFunc == nil {
		panic("answerServiceMock.DeleteAnswerFunc: method is nil but answerService.DeleteAnswer was just called")
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

func (mock *answerServiceMock) DeleteAnswerCalls() []struct {
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

func (mock *answerServiceMock) ListAnswers(ctx context.Context, input answer.ListAnswersInput) (domain.Page[domain.AnswerSummary], error) {
	if mock.ListAnswersFunc == nil {
		panic("answerServiceMock.ListAnswersFunc: method is nil but answerService.ListAnswers was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input answer.ListAnswersInput
	}{Ctx: ctx, Input: input}
	mock.lockListAnswers.Lock()
	mock.calls.ListAnswers = append(mock.calls.ListAnswers, callInfo)
	mock.lockListAnswers.Unlock()
	return mock.ListAnswersFunc(ctx, input)
}

func (mock *answerServiceMock) ListAnswersCalls() []struct {
	Ctx   context.Context
	Input answer.ListAnswersInput
} {
	var calls []struct {
		Ctx   context.Context
		Input answer.ListAnswersInput
	}
	mock.lockListAnswers.RLock()
	calls = mock.calls.ListAnswers
	mock.lockListAnswers.RUnlock()
	return calls
}
