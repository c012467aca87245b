package seeder

import (
	"context"
	"sync"

	"github.com/heartmarshall/techflow-backend/internal/auth"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

var _ identitySyncer = &identitySyncerMock{}

type identitySyncerMock struct {
	SyncUserFunc func(ctx context.Context, id auth.Identity) (*domain.User, error)

	calls struct {
		SyncUser []struct {
			Ctx context.Context
			Id  auth.Identity
		}
	}
	lockSyncUser sync.RWMutex
}

func (mock *identitySyncerMock) SyncUser(ctx context.Context, id auth.Identity) (*domain.User, error) {
	if mock.SyncUserFunc == nil {
		panic("identitySyncerMock.SyncUserFunc: method is nil but identitySyncer.SyncUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  auth.Identity
	}{Ctx: ctx, Id: id}
	mock.lockSyncUser.Lock()
	mock.calls.SyncUser = append(mock.calls.SyncUser, callInfo)
	mock.lockSyncUser.Unlock()
	return mock.SyncUserFunc(ctx, id)
}

func (mock *identitySyncerMock) SyncUserCalls() []struct {
	Ctx context.Context
	Id  auth.Identity
} {
	var calls []struct {
		Ctx context.Context
		Id  auth.Identity
	}
	mock.lockSyncUser.RLock()
	calls = mock.calls.SyncUser
	mock.lockSyncUser.RUnlock()
	return calls
}
