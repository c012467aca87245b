package question

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	CreateFunc         func(ctx context.Context, authorID uuid.UUID, title string, content string) (*domain.Question, error)
	UpdateFunc         func(ctx context.Context, questionID uuid.UUID, title string, content string) (*domain.Question, error)
	GetByIDFunc        func(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
	GetSummaryFunc     func(ctx context.Context, questionID uuid.UUID) (*domain.QuestionSummary, error)
	ListFunc           func(ctx context.Context, f domain.QuestionFilter) ([]domain.QuestionSummary, int, error)
	IncrementViewsFunc func(ctx context.Context, questionID uuid.UUID) (int, error)
	ViewerStateFunc    func(ctx context.Context, questionID uuid.UUID, userID uuid.UUID) (domain.ViewerState, error)
	IsSavedFunc        func(ctx context.Context, userID uuid.UUID, questionID uuid.UUID) (bool, error)
	SaveFunc           func(ctx context.Context, userID uuid.UUID, questionID uuid.UUID) (bool, error)
	UnsaveFunc         func(ctx context.Context, userID uuid.UUID, questionID uuid.UUID) (bool, error)

	calls struct {
		Create []struct {
			Ctx      context.Context
			AuthorID uuid.UUID
			Title    string
			Content  string
		}
		Update []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
			Title      string
			Content    string
		}
		GetByID []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
		GetSummary []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.QuestionFilter
		}
		IncrementViews []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
		ViewerState []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
			UserID     uuid.UUID
		}
		IsSaved []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			QuestionID uuid.UUID
		}
		Save []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			QuestionID uuid.UUID
		}
		Unsave []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			QuestionID uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockUpdate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockGetSummary     sync.RWMutex
	lockList           sync.RWMutex
	lockIncrementViews sync.RWMutex
	lockViewerState    sync.RWMutex
	lockIsSaved        sync.RWMutex
	lockSave           sync.RWMutex
	lockUnsave         sync.RWMutex
}

func (mock *questionRepoMock) Create(ctx context.Context, authorID uuid.UUID, title string, content string) (*domain.Question, error) {
	if mock.CreateFunc == nil {
		panic("questionRepoMock.CreateFunc: method is nil but questionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID uuid.UUID
		Title    string
		Content  string
	}{Ctx: ctx, AuthorID: authorID, Title: title, Content: content}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, authorID, title, content)
}

func (mock *questionRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	AuthorID uuid.UUID
	Title    string
	Content  string
} {
	var calls []struct {
		Ctx      context.Context
		AuthorID uuid.UUID
		Title    string
		Content  string
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *questionRepoMock) Update(ctx context.Context, questionID uuid.UUID, title string, content string) (*domain.Question, error) {
	if mock.UpdateFunc == nil {
		panic("questionRepoMock.UpdateFunc: method is nil but questionRepo.Update was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
		Title      string
		Content    string
	}{Ctx: ctx, QuestionID: questionID, Title: title, Content: content}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, questionID, title, content)
}

func (mock *questionRepoMock) UpdateCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
	Title      string
	Content    string
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
		Title      string
		Content    string
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
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

func (mock *questionRepoMock) GetSummary(ctx context.Context, questionID uuid.UUID) (*domain.QuestionSummary, error) {
	if mock.GetSummaryFunc == nil {
		panic("questionRepoMock.GetSummaryFunc: method is nil but questionRepo.GetSummary was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{Ctx: ctx, QuestionID: questionID}
	mock.lockGetSummary.Lock()
	mock.calls.GetSummary = append(mock.calls.GetSummary, callInfo)
	mock.lockGetSummary.Unlock()
	return mock.GetSummaryFunc(ctx, questionID)
}

func (mock *questionRepoMock) GetSummaryCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}
	mock.lockGetSummary.RLock()
	calls = mock.calls.GetSummary
	mock.lockGetSummary.RUnlock()
	return calls
}

func (mock *questionRepoMock) List(ctx context.Context, f domain.QuestionFilter) ([]domain.QuestionSummary, int, error) {
	if mock.ListFunc == nil {
		panic("questionRepoMock.ListFunc: method is nil but questionRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.QuestionFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *questionRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.QuestionFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.QuestionFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *questionRepoMock) IncrementViews(ctx context.Context, questionID uuid.UUID) (int, error) {
	if mock.IncrementViewsFunc == nil {
		panic("questionRepoMock.IncrementViewsFunc: method is nil but questionRepo.IncrementViews was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{Ctx: ctx, QuestionID: questionID}
	mock.lockIncrementViews.Lock()
	mock.calls.IncrementViews = append(mock.calls.IncrementViews, callInfo)
	mock.lockIncrementViews.Unlock()
	return mock.IncrementViewsFunc(ctx, questionID)
}

func (mock *questionRepoMock) IncrementViewsCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}
	mock.lockIncrementViews.RLock()
	calls = mock.calls.IncrementViews
	mock.lockIncrementViews.RUnlock()
	return calls
}

func (mock *questionRepoMock) ViewerState(ctx context.Context, questionID uuid.UUID, userID uuid.UUID) (domain.ViewerState, error) {
	if mock.ViewerStateFunc == nil {
		panic("questionRepoMock.ViewerStateFunc: method is nil but questionRepo.ViewerState was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
		UserID     uuid.UUID
	}{Ctx: ctx, QuestionID: questionID, UserID: userID}
	mock.lockViewerState.Lock()
	mock.calls.ViewerState = append(mock.calls.ViewerState, callInfo)
	mock.lockViewerState.Unlock()
	return mock.ViewerStateFunc(ctx, questionID, userID)
}

func (mock *questionRepoMock) ViewerStateCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
	UserID     uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
		UserID     uuid.UUID
	}
	mock.lockViewerState.RLock()
	calls = mock.calls.ViewerState
	mock.lockViewerState.RUnlock()
	return calls
}

func (mock *questionRepoMock) IsSaved(ctx context.Context, userID uuid.UUID, questionID uuid.UUID) (bool, error) {
	if mock.IsSavedFunc == nil {
		panic("questionRepoMock.IsSavedFunc: method is nil but questionRepo.IsSaved was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		QuestionID uuid.UUID
	}{Ctx: ctx, UserID: userID, QuestionID: questionID}
	mock.lockIsSaved.Lock()
	mock.calls.IsSaved = append(mock.calls.IsSaved, callInfo)
	mock.lockIsSaved.Unlock()
	return mock.IsSavedFunc(ctx, userID, questionID)
}

func (mock *questionRepoMock) IsSavedCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		QuestionID uuid.UUID
	}
	mock.lockIsSaved.RLock()
	calls = mock.calls.IsSaved
	mock.lockIsSaved.RUnlock()
	return calls
}

func (mock *questionRepoMock) Save(ctx context.Context, userID uuid.UUID, questionID uuid.UUID) (bool, error) {
	if mock.SaveFunc == nil {
		panic("questionRepoMock.SaveFunc: method is nil but questionRepo.Save was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		QuestionID uuid.UUID
	}{Ctx: ctx, UserID: userID, QuestionID: questionID}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, userID, questionID)
}

func (mock *questionRepoMock) SaveCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		QuestionID uuid.UUID
	}
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *questionRepoMock) Unsave(ctx context.Context, userID uuid.UUID, questionID uuid.UUID) (bool, error) {
	if mock.UnsaveFunc == nil {
		panic("questionRepoMock.UnsaveFunc: method is nil but questionRepo.Unsave was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		QuestionID uuid.UUID
	}{Ctx: ctx, UserID: userID, QuestionID: questionID}
	mock.lockUnsave.Lock()
	mock.calls.Unsave = append(mock.calls.Unsave, callInfo)
	mock.lockUnsave.Unlock()
	return mock.UnsaveFunc(ctx, userID, questionID)
}

func (mock *questionRepoMock) UnsaveCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		QuestionID uuid.UUID
	}
	mock.lockUnsave.RLock()
	calls = mock.calls.Unsave
	mock.lockUnsave.RUnlock()
	return calls
}
