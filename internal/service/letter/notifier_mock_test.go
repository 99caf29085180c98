package letter

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"sync"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyRolesFunc func(ctx context.Context, text string, roles ...domain.Role) (int, int)

	calls struct {
		NotifyRoles []struct {
			Ctx   context.Context
			Text  string
			Roles []domain.Role
		}
	}
	lockNotifyRoles sync.RWMutex
}

func (mock *notifierMock) NotifyRoles(ctx context.Context, text string, roles ...domain.Role) (int, int) {
	if mock.NotifyRolesFunc == nil {
		panic("notifierMock.NotifyRolesFunc: method is nil but notifier.NotifyRoles was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Text  string
		Roles []domain.Role
	}{
		Ctx:   ctx,
		Text:  text,
		Roles: roles,
	}
	mock.lockNotifyRoles.Lock()
	mock.calls.NotifyRoles = append(mock.calls.NotifyRoles, callInfo)
	mock.lockNotifyRoles.Unlock()
	return mock.NotifyRolesFunc(ctx, text, roles...)
}

func (mock *notifierMock) NotifyRolesCalls() []struct {
	Ctx   context.Context
	Text  string
	Roles []domain.Role
} {
	var calls []struct {
		Ctx   context.Context
		Text  string
		Roles []domain.Role
	}
	mock.lockNotifyRoles.RLock()
	calls = mock.calls.NotifyRoles
	mock.lockNotifyRoles.RUnlock()
	return calls
}
