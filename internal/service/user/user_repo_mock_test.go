package user

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByTelegramIDFunc   func(ctx context.Context, telegramUserID string) (*domain.User, error)
	UpsertFunc            func(ctx context.Context, u domain.User) (*domain.User, error)
	ListActiveByRolesFunc func(ctx context.Context, roles ...domain.Role) ([]domain.User, error)
	SetRoleFunc           func(ctx context.Context, telegramUserID string, role domain.Role) (*domain.User, error)
	SetActiveFunc         func(ctx context.Context, telegramUserID string, active bool) error

	calls struct {
		GetByTelegramID []struct {
			Ctx            context.Context
			TelegramUserID string
		}
		Upsert []struct {
			Ctx context.Context
			U   domain.User
		}
		ListActiveByRoles []struct {
			Ctx   context.Context
			Roles []domain.Role
		}
		SetRole []struct {
			Ctx            context.Context
			TelegramUserID string
			Role           domain.Role
		}
		SetActive []struct {
			Ctx            context.Context
			TelegramUserID string
			Active         bool
		}
	}
	lockGetByTelegramID   sync.RWMutex
	lockUpsert            sync.RWMutex
	lockListActiveByRoles sync.RWMutex
	lockSetRole           sync.RWMutex
	lockSetActive         sync.RWMutex
}

func (mock *userRepoMock) GetByTelegramID(ctx context.Context, telegramUserID string) (*domain.User, error) {
	if mock.GetByTelegramIDFunc == nil {
		panic("userRepoMock.GetByTelegramIDFunc: method is nil but userRepo.GetByTelegramID was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		TelegramUserID string
	}{
		Ctx:            ctx,
		TelegramUserID: telegramUserID,
	}
	mock.lockGetByTelegramID.Lock()
	mock.calls.GetByTelegramID = append(mock.calls.GetByTelegramID, callInfo)
	mock.lockGetByTelegramID.Unlock()
	return mock.GetByTelegramIDFunc(ctx, telegramUserID)
}

func (mock *userRepoMock) GetByTelegramIDCalls() []struct {
	Ctx            context.Context
	TelegramUserID string
} {
	var calls []struct {
		Ctx            context.Context
		TelegramUserID string
	}
	mock.lockGetByTelegramID.RLock()
	calls = mock.calls.GetByTelegramID
	mock.lockGetByTelegramID.RUnlock()
	return calls
}

func (mock *userRepoMock) Upsert(ctx context.Context, u domain.User) (*domain.User, error) {
	if mock.UpsertFunc == nil {
		panic("userRepoMock.UpsertFunc: method is nil but userRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, u)
}

func (mock *userRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   domain.User
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
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

func (mock *userRepoMock) SetRole(ctx context.Context, telegramUserID string, role domain.Role) (*domain.User, error) {
	if mock.SetRoleFunc == nil {
		panic("userRepoMock.SetRoleFunc: method is nil but userRepo.SetRole was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		TelegramUserID string
		Role           domain.Role
	}{
		Ctx:            ctx,
		TelegramUserID: telegramUserID,
		Role:           role,
	}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, telegramUserID, role)
}

func (mock *userRepoMock) SetRoleCalls() []struct {
	Ctx            context.Context
	TelegramUserID string
	Role           domain.Role
} {
	var calls []struct {
		Ctx            context.Context
		TelegramUserID string
		Role           domain.Role
	}
	mock.lockSetRole.RLock()
	calls = mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}

func (mock *userRepoMock) SetActive(ctx context.Context, telegramUserID string, active bool) error {
	if mock.SetActiveFunc == nil {
		panic("userRepoMock.SetActiveFunc: method is nil but userRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		TelegramUserID string
		Active         bool
	}{
		Ctx:            ctx,
		TelegramUserID: telegramUserID,
		Active:         active,
	}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, telegramUserID, active)
}

func (mock *userRepoMock) SetActiveCalls() []struct {
	Ctx            context.Context
	TelegramUserID string
	Active         bool
} {
	var calls []struct {
		Ctx            context.Context
		TelegramUserID string
		Active         bool
	}
	mock.lockSetActive.RLock()
	calls = mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}
