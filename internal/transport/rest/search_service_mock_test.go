package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/search"
)

var _ searchService = &searchServiceMock{}

type searchServiceMock struct {
	GlobalSearchFunc func(ctx context.Context, input search.GlobalSearchInput) ([]domain.SearchHit, error)

	calls struct {
		GlobalSearch []struct {
			Ctx   context.Context
			Input search.GlobalSearchInput
		}
	}
	lockGlobalSearch sync.RWMutex
}

func (mock *searchServiceMock) GlobalSearch(ctx context.Context, input search.GlobalSearchInput) ([]domain.SearchHit, error) {
	if mock.GlobalSearchFunc == nil {
		panic("searchServiceMock.GlobalSearchFunc: method is nil but searchService.GlobalSearch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input search.GlobalSearchInput
	}{Ctx: ctx, Input: input}
	mock.lockGlobalSearch.Lock()
	mock.calls.GlobalSearch = append(mock.calls.GlobalSearch, callInfo)
	mock.lockGlobalSearch.Unlock()
	return mock.GlobalSearchFunc(ctx, input)
}

func (mock *searchServiceMock) GlobalSearchCalls() []struct {
	Ctx   context.Context
	Input search.GlobalSearchInput
} {
	var calls []struct {
		Ctx   context.Context
		Input search.GlobalSearchInput
	}
	mock.lockGlobalSearch.RLock()
	calls = mock.calls.GlobalSearch
	mock.lockGlobalSearch.RUnlock()
	return calls
}
