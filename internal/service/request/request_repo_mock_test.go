package request

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"sync"
)

var _ requestRepo = &requestRepoMock{}

type requestRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Request, error)
	ListFunc    func(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error)
	CreateFunc  func(ctx context.Context, req domain.Request) (*domain.Request, error)
	UpdateFunc  func(ctx context.Context, id int64, p domain.RequestPatch) (*domain.Request, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	StatsFunc   func(ctx context.Context) (domain.RequestStats, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx context.Context
			F   domain.RequestFilter
		}
		Create []struct {
			Ctx context.Context
			Req domain.Request
		}
		Update []struct {
			Ctx context.Context
			Id  int64
			P   domain.RequestPatch
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockStats   sync.RWMutex
}

func (mock *requestRepoMock) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	if mock.GetByIDFunc == nil {
		panic("requestRepoMock.GetByIDFunc: method is nil but requestRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *requestRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *requestRepoMock) List(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error) {
	if mock.ListFunc == nil {
		panic("requestRepoMock.ListFunc: method is nil but requestRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.RequestFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *requestRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.RequestFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.RequestFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *requestRepoMock) Create(ctx context.Context, req domain.Request) (*domain.Request, error) {
	if mock.CreateFunc == nil {
		panic("requestRepoMock.CreateFunc: method is nil but requestRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.Request
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, req)
}

func (mock *requestRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Req domain.Request
} {
	var calls []struct {
		Ctx context.Context
		Req domain.Request
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *requestRepoMock) Update(ctx context.Context, id int64, p domain.RequestPatch) (*domain.Request, error) {
	if mock.UpdateFunc == nil {
		panic("requestRepoMock.UpdateFunc: method is nil but requestRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
		P   domain.RequestPatch
	}{
		Ctx: ctx,
		Id:  id,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *requestRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Id  int64
	P   domain.RequestPatch
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
		P   domain.RequestPatch
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *requestRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("requestRepoMock.DeleteFunc: method is nil but requestRepo.Delete was just called")
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

func (mock *requestRepoMock) DeleteCalls() []struct {
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

func (mock *requestRepoMock) Stats(ctx context.Context) (domain.RequestStats, error) {
	if mock.StatsFunc == nil {
		panic("requestRepoMock.StatsFunc: method is nil but requestRepo.Stats was just called")
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

func (mock *requestRepoMock) StatsCalls() []struct {
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
