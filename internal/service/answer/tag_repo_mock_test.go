package answer

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	IDsByQuestionFunc func(ctx context.Context, questionID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		IDsByQuestion []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
	}
	lockIDsByQuestion sync.RWMutex
}

func (mock *tagRepoMock) IDsByQuestion(ctx context.Context, questionID uuid.UUID) ([]uuid.UUID, error) {
	if mock.IDsByQuestionFunc == nil {
		panic("tagRepoMock.IDsByQuestionFunc: method is nil but tagRepo.IDsByQuestion was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{Ctx: ctx, QuestionID: questionID}
	mock.lockIDsByQuestion.Lock()
	mock.calls.IDsByQuestion = append(mock.calls.IDsByQuestion, callInfo)
	mock.lockIDsByQuestion.Unlock()
	return mock.IDsByQuestionFunc(ctx, questionID)
}

func (mock *tagRepoMock) IDsByQuestionCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}
	mock.lockIDsByQuestion.RLock()
	calls = mock.calls.IDsByQuestion
	mock.lockIDsByQuestion.RUnlock()
	return calls
}
