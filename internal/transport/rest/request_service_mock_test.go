package rest

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/service/request"
	"sync"
)

var _ requestService = &requestServiceMock{}

type requestServiceMock struct {
	CreateFunc func(ctx context.Context, input request.CreateInput) (*domain.Request, error)
	GetFunc    func(ctx context.Context, id int64) (*domain.Request, error)
	ListFunc   func(ctx context.Context, input request.ListInput) ([]domain.Request, error)
	UpdateFunc func(ctx context.Context, input request.UpdateInput) (*domain.Request, error)
	DeleteFunc func(ctx context.Context, id int64) error
	StatsFunc  func(ctx context.Context) (domain.RequestStats, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input request.CreateInput
		}
		Get []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx   context.Context
			Input request.ListInput
		}
		Update []struct {
			Ctx   context.Context
			Input request.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
	lockStats  sync.RWMutex
}

func (mock *requestServiceMock) Create(ctx context.Context, input request.CreateInput) (*domain.Request, error) {
	if mock.CreateFunc == nil {
		panic("requestServiceMock.CreateFunc: method is nil but requestService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input request.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *requestServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input request.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input request.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *requestServiceMock) Get(ctx context.Context, id int64) (*domain.Request, error) {
	if mock.GetFunc == nil {
		panic("requestServiceMock.GetFunc: method is nil but requestService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *requestServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *requestServiceMock) List(ctx context.Context, input request.ListInput) ([]domain.Request, error) {
	if mock.ListFunc == nil {
		panic("requestServiceMock.ListFunc: method is nil but requestService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input request.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *requestServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input request.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input request.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *requestServiceMock) Update(ctx context.Context, input request.UpdateInput) (*domain.Request, error) {
	if mock.UpdateFunc == nil {
		panic("requestServiceMock.UpdateFunc: method is nil but requestService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input request.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *requestServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input request.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input request.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *requestServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("requestServiceMock.DeleteFunc: method is nil but requestService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *requestServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *requestServiceMock) Stats(ctx context.Context) (domain.RequestStats, error) {
	if mock.StatsFunc == nil {
		panic("requestServiceMock.StatsFunc: method is nil but requestService.Stats was just called")
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

func (mock *requestServiceMock) StatsCalls() []struct {
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
