package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/question"
)

var _ questionService = &questionServiceMock{}

type questionServiceMock struct {
	CreateQuestionFunc     func(ctx context.Context, input question.CreateQuestionInput) (*domain.Question, error)
	EditQuestionFunc       func(ctx context.Context, input question.EditQuestionInput) (*domain.Question, error)
	DeleteQuestionFunc     func(ctx context.Context, questionID uuid.UUID) (domain.CascadeReport, error)
	GetQuestionFunc        func(ctx context.Context, questionID uuid.UUID) (*domain.QuestionDetail, error)
	ListQuestionsFunc      func(ctx context.Context, input question.ListQuestionsInput) (domain.Page[domain.QuestionSummary], error)
	ListSavedQuestionsFunc func(ctx context.Context, input question.ListQuestionsInput) (domain.Page[domain.QuestionSummary], error)
	ToggleSaveQuestionFunc func(ctx context.Context, questionID uuid.UUID) (bool, error)
	ViewQuestionFunc       func(ctx context.Context, questionID uuid.UUID) (int, error)

	calls struct {
		CreateQuestion []struct {
			Ctx   context.Context
			Input question.CreateQuestionInput
		}
		EditQuestion []struct {
			Ctx   context.Context
			Input question.EditQuestionInput
		}
		DeleteQuestion []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
		GetQuestion []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
		ListQuestions []struct {
			Ctx   context.Context
			Input question.ListQuestionsInput
		}
		ListSavedQuestions []struct {
			Ctx   context.Context
			Input question.ListQuestionsInput
		}
		ToggleSaveQuestion []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
		ViewQuestion []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
	}
	lockCreateQuestion     sync.RWMutex
	lockEditQuestion       sync.RWMutex
	lockDeleteQuestion     sync.RWMutex
	lockGetQuestion        sync.RWMutex
	lockListQuestions      sync.RWMutex
	lockListSavedQuestions sync.RWMutex
	lockToggleSaveQuestion sync.RWMutex
	lockViewQuestion       sync.RWMutex
}

func (mock *questionServiceMock) CreateQuestion(ctx context.Context, input question.CreateQuestionInput) (*domain.Question, error) {
	if mock.CreateQuestionFunc == nil {
		panic("questionServiceMock.CreateQuestionFunc: method is nil but questionService.CreateQuestion was just called")
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

func (mock *questionServiceMock) CreateQuestionCalls() []struct {
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

func (mock *questionServiceMock) EditQuestion(ctx context.Context, input question.EditQuestionInput) (*domain.Question, error) {
	if mock.EditQuestionFunc == nil {
		panic("questionServiceMock.EditQuestionFunc: method is nil but questionService.EditQuestion was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input question.EditQuestionInput
	}{Ctx: ctx, Input: input}
	mock.lockEditQuestion.Lock()
	mock.calls.EditQuestion = append(mock.calls.EditQuestion, callInfo)
	mock.lockEditQuestion.Unlock()
	return mock.EditQuestionFunc(ctx, input)
}

func (mock *questionServiceMock) EditQuestionCalls() []struct {
	Ctx   context.Context
	Input question.EditQuestionInput
} {
	var calls []struct {
		Ctx   context.Context
		Input question.EditQuestionInput
	}
	mock.lockEditQuestion.RLock()
	calls = mock.calls.EditQuestion
	mock.lockEditQuestion.RUnlock()
	return calls
}

func (mock *questionServiceMock) DeleteQuestion(ctx context.Context, questionID uuid.UUID) (domain.CascadeReport, error) {
	if mock.DeleteQuestionFunc == nil {
		panic("questionServiceMock.DeleteQuestionFunc: method is nil but questionService.DeleteQuestion was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{Ctx: ctx, QuestionID: questionID}
	mock.lockDeleteQuestion.Lock()
	mock.calls.DeleteQuestion = append(mock.calls.DeleteQuestion, callInfo)
	mock.lockDeleteQuestion.Unlock()
	return mock.DeleteQuestionFunc(ctx, questionID)
}

func (mock *questionServiceMock) DeleteQuestionCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}
	mock.lockDeleteQuestion.RLock()
	calls = mock.calls.DeleteQuestion
	mock.lockDeleteQuestion.RUnlock()
	return calls
}

func (mock *questionServiceMock) GetQuestion(ctx context.Context, questionID uuid.UUID) (*domain.QuestionDetail, error) {
	if mock.GetQuestionFunc == nil {
		panic("questionServiceMock.GetQuestionFunc: method is nil but questionService.GetQuestion was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{Ctx: ctx, QuestionID: questionID}
	mock.lockGetQuestion.Lock()
	mock.calls.GetQuestion = append(mock.calls.GetQuestion, callInfo)
	mock.lockGetQuestion.Unlock()
	return mock.GetQuestionFunc(ctx, questionID)
}

func (mock *questionServiceMock) GetQuestionCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}
	mock.lockGetQuestion.RLock()
	calls = mock.calls.GetQuestion
	mock.lockGetQuestion.RUnlock()
	return calls
}

func (mock *questionServiceMock) ListQuestions(ctx context.Context, input question.ListQuestionsInput) (domain.Page[domain.QuestionSummary], error) {
	if mock.ListQuestionsFunc == nil {
		panic("questionServiceMock.ListQuestionsFunc: method is nil but questionService.ListQuestions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input question.ListQuestionsInput
	}{Ctx: ctx, Input: input}
	mock.lockListQuestions.Lock()
	mock.calls.ListQuestions = append(mock.calls.ListQuestions, callInfo)
	mock.lockListQuestions.Unlock()
	return mock.ListQuestionsFunc(ctx, input)
}

func (mock *questionServiceMock) ListQuestionsCalls() []struct {
	Ctx   context.Context
	Input question.ListQuestionsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input question.ListQuestionsInput
	}
	mock.lockListQuestions.RLock()
	calls = mock.calls.ListQuestions
	mock.lockListQuestions.RUnlock()
	return calls
}

func (mock *questionServiceMock) ListSavedQuestions(ctx context.Context, input question.ListQuestionsInput) (domain.Page[domain.QuestionSummary], error) {
	if mock.ListSavedQuestionsFunc == nil {
		panic("questionServiceMock.ListSavedQuestionsFunc: method is nil but questionService.ListSavedQuestions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input question.ListQuestionsInput
	}{Ctx: ctx, Input: input}
	mock.lockListSavedQuestions.Lock()
	mock.calls.ListSavedQuestions = append(mock.calls.ListSavedQuestions, callInfo)
	mock.lockListSavedQuestions.Unlock()
	return mock.ListSavedQuestionsFunc(ctx, input)
}

func (mock *questionServiceMock) ListSavedQuestionsCalls() []struct {
	Ctx   context.Context
	Input question.ListQuestionsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input question.ListQuestionsInput
	}
	mock.lockListSavedQuestions.RLock()
	calls = mock.calls.ListSavedQuestions
	mock.lockListSavedQuestions.RUnlock()
	return calls
}

func (mock *questionServiceMock) ToggleSaveQuestion(ctx context.Context, questionID uuid.UUID) (bool, error) {
	if mock.ToggleSaveQuestionFunc == nil {
		panic("questionServiceMock.ToggleSaveQuestionFunc: method is nil but questionService.ToggleSaveQuestion was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{Ctx: ctx, QuestionID: questionID}
	mock.lockToggleSaveQuestion.Lock()
	mock.calls.ToggleSaveQuestion = append(mock.calls.ToggleSaveQuestion, callInfo)
	mock.lockToggleSaveQuestion.Unlock()
	return mock.ToggleSaveQuestionFunc(ctx, questionID)
}

func (mock *questionServiceMock) ToggleSaveQuestionCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}
	mock.lockToggleSaveQuestion.RLock()
	calls = mock.calls.ToggleSaveQuestion
	mock.lockToggleSaveQuestion.RUnlock()
	return calls
}

func (mock *questionServiceMock) ViewQuestion(ctx context.Context, questionID uuid.UUID) (int, error) {
	if mock.ViewQuestionFunc == nil {
		panic("questionServiceMock.ViewQuestionFunc: method is nil but questionService.ViewQuestion was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{Ctx: ctx, QuestionID: questionID}
	mock.lockViewQuestion.Lock()
	mock.calls.ViewQuestion = append(mock.calls.ViewQuestion, callInfo)
	mock.lockViewQuestion.Unlock()
	return mock.ViewQuestionFunc(ctx, questionID)
}

func (mock *questionServiceMock) ViewQuestionCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}
	mock.lockViewQuestion.RLock()
	calls = mock.calls.ViewQuestion
	mock.lockViewQuestion.RUnlock()
	return calls
}
