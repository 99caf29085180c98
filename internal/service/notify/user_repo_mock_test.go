package notify

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListActiveByRolesFunc func(ctx context.Context, roles ...domain.Role) ([]domain.User, error)

	calls struct {
		ListActiveByRoles []struct {
			Ctx   context.Context
			Roles []domain.Role
		}
	}
	lockListActiveByRoles sync.RWMutex
}

func (mock *userRepoMock) ListActiveByRoles(ctx context.Context, roles ...domain.Role) ([]domain.User, error) {
	if mock.ListActiveByRolesFunc == nil {
		panic("userRepoMock.ListActiveByRolesFunc: method is nil but userRepo.ListActiveByRoles was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Roles []domain.Role
	}{
		Ctx:   ctx,
		Roles: roles,
	}
	mock.lockListActiveByRoles.Lock()
	mock.calls.ListActiveByRoles = append(mock.calls.ListActiveByRoles, callInfo)
	mock.lockListActiveByRoles.Unlock()
	return mock.ListActiveByRolesFunc(ctx, roles...)
}

func (mock *userRepoMock) ListActiveByRolesCalls() []struct {
	Ctx   context.Context
	Roles []domain.Role
} {
	var calls []struct {
		Ctx   context.Context
		Roles []domain.Role
	}
	mock.lockListActiveByRoles.RLock()
	calls = mock.calls.ListActiveByRoles
	mock.lockListActiveByRoles.RUnlock()
	return calls
}
