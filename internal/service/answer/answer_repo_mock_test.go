package answer

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

var _ answerRepo = &answerRepoMock{}

type answerRepoMock struct {
	CreateFunc  func(ctx context.Context, questionID uuid.UUID, authorID uuid.UUID, content string) (*domain.Answer, error)
	UpdateFunc  func(ctx context.Context, answerID uuid.UUID, content string) (*domain.Answer, error)
	GetByIDFunc func(ctx context.Context, answerID uuid.UUID) (*domain.Answer, error)
	ListFunc    func(ctx context.Context, f domain.AnswerFilter) ([]domain.AnswerWithQuestion, int, error)

	calls struct {
		Create []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
			AuthorID   uuid.UUID
			Content    string
		}
		Update []struct {
			Ctx      context.Context
			AnswerID uuid.UUID
			Content  string
		}
		GetByID []struct {
			Ctx      context.Context
			AnswerID uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.AnswerFilter
		}
	}
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *answerRepoMock) Create(ctx context.Context, questionID uuid.UUID, authorID uuid.UUID, content string) (*domain.Answer, error) {
	if mock.CreateFunc == nil {
		panic("answerRepoMock.CreateFunc: method is nil but answerRepo.Create was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
		AuthorID   uuid.UUID
		Content    string
	}{Ctx: ctx, QuestionID: questionID, AuthorID: authorID, Content: content}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, questionID, authorID, content)
}

func (mock *answerRepoMock) CreateCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
	AuthorID   uuid.UUID
	Content    string
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
		AuthorID   uuid.UUID
		Content    string
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *answerRepoMock) Update(ctx context.Context, answerID uuid.UUID, content string) (*domain.Answer, error) {
	if mock.UpdateFunc == nil {
		panic("answerRepoMock.UpdateFunc: method is nil but answerRepo.Update was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AnswerID uuid.UUID
		Content  string
	}{Ctx: ctx, AnswerID: answerID, Content: content}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, answerID, content)
}

func (mock *answerRepoMock) UpdateCalls() []struct {
	Ctx      context.Context
	AnswerID uuid.UUID
	Content  string
} {
	var calls []struct {
		Ctx      context.Context
		AnswerID uuid.UUID
		Content  string
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *answerRepoMock) GetByID(ctx context.Context, answerID uuid.UUID) (*domain.Answer, error) {
	if mock.GetByIDFunc == nil {
		panic("answerRepoMock.GetByIDFunc: method is nil but answerRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AnswerID uuid.UUID
	}{Ctx: ctx, AnswerID: answerID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, answerID)
}

func (mock *answerRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	AnswerID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		AnswerID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *answerRepoMock) List(ctx context.Context, f domain.AnswerFilter) ([]domain.AnswerWithQuestion, int, error) {
	if mock.ListFunc == nil {
		panic("answerRepoMock.ListFunc: method is nil but answerRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AnswerFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *answerRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.AnswerFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.AnswerFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
