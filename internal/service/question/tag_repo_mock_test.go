package question

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	UpsertFunc            func(ctx context.Context, name string) (*domain.Tag, error)
	LinkQuestionFunc      func(ctx context.Context, questionID uuid.UUID, tagIDs []uuid.UUID) error
	IDsByQuestionFunc     func(ctx context.Context, questionID uuid.UUID) ([]uuid.UUID, error)
	InteractionCountsFunc func(ctx context.Context, userID uuid.UUID) ([]domain.TagCount, error)

	calls struct {
		Upsert []struct {
			Ctx  context.Context
			Name string
		}
		LinkQuestion []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
			TagIDs     []uuid.UUID
		}
		IDsByQuestion []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
		InteractionCounts []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockUpsert            sync.RWMutex
	lockLinkQuestion      sync.RWMutex
	lockIDsByQuestion     sync.RWMutex
	lockInteractionCounts sync.RWMutex
}

func (mock *tagRepoMock) Upsert(ctx context.Context, name string) (*domain.Tag, error) {
	if mock.UpsertFunc == nil {
		panic("tagRepoMock.UpsertFunc: method is nil but tagRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, name)
}

func (mock *tagRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *tagRepoMock) LinkQuestion(ctx context.Context, questionID uuid.UUID, tagIDs []uuid.UUID) error {
	if mock.LinkQuestionFunc == nil {
		panic("tagRepoMock.LinkQuestionFunc: method is nil but tagRepo.LinkQuestion was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
		TagIDs     []uuid.UUID
	}{Ctx: ctx, QuestionID: questionID, TagIDs: tagIDs}
	mock.lockLinkQuestion.Lock()
	mock.calls.LinkQuestion = append(mock.calls.LinkQuestion, callInfo)
	mock.lockLinkQuestion.Unlock()
	return mock.LinkQuestionFunc(ctx, questionID, tagIDs)
}

func (mock *tagRepoMock) LinkQuestionCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
	TagIDs     []uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
		TagIDs     []uuid.UUID
	}
	mock.lockLinkQuestion.RLock()
	calls = mock.calls.LinkQuestion
	mock.lockLinkQuestion.RUnlock()
	return calls
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

func (mock *tagRepoMock) InteractionCounts(ctx context.Context, userID uuid.UUID) ([]domain.TagCount, error) {
	if mock.InteractionCountsFunc == nil {
		panic("tagRepoMock.InteractionCountsFunc: method is nil but tagRepo.InteractionCounts was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockInteractionCounts.Lock()
	mock.calls.InteractionCounts = append(mock.calls.InteractionCounts, callInfo)
	mock.lockInteractionCounts.Unlock()
	return mock.InteractionCountsFunc(ctx, userID)
}

func (mock *tagRepoMock) InteractionCountsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockInteractionCounts.RLock()
	calls = mock.calls.InteractionCounts
	mock.lockInteractionCounts.RUnlock()
	return calls
}
