package mailer

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"sync"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc func(ctx context.Context, l domain.EmailLog) (*domain.EmailLog, error)
	ListFunc   func(ctx context.Context, status *domain.EmailStatus, limit int) ([]domain.EmailLog, error)
	StatsFunc  func(ctx context.Context) (domain.EmailStats, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   domain.EmailLog
		}
		List []struct {
			Ctx    context.Context
			Status *domain.EmailStatus
			Limit  int
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
	lockStats  sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, l domain.EmailLog) (*domain.EmailLog, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.EmailLog
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   domain.EmailLog
} {
	var calls []struct {
		Ctx context.Context
		L   domain.EmailLog
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *logRepoMock) List(ctx context.Context, status *domain.EmailStatus, limit int) ([]domain.EmailLog, error) {
	if mock.ListFunc == nil {
		panic("logRepoMock.ListFunc: method is nil but logRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status *domain.EmailStatus
		Limit  int
	}{
		Ctx:    ctx,
		Status: status,
		Limit:  limit,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, status, limit)
}

func (mock *logRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Status *domain.EmailStatus
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		Status *domain.EmailStatus
		Limit  int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *logRepoMock) Stats(ctx context.Context) (domain.EmailStats, error) {
	if mock.StatsFunc == nil {
		panic("logRepoMock.StatsFunc: method is nil but logRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *logRepoMock) StatsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockStats.RLock()
	calls = mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
