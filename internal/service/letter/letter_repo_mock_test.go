package letter

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"sync"
)

var _ letterRepo = &letterRepoMock{}

type letterRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.Letter, error)
	GetForUpdateFunc func(ctx context.Context, id int64) (*domain.Letter, error)
	ListFunc         func(ctx context.Context, f domain.LetterFilter) ([]domain.Letter, error)
	CreateFunc       func(ctx context.Context, l domain.Letter) (*domain.Letter, error)
	UpdateFunc       func(ctx context.Context, id int64, p domain.LetterPatch) (*domain.Letter, error)
	TransitionFunc   func(ctx context.Context, id int64, t domain.LetterTransition) (*domain.Letter, error)
	DeleteFunc       func(ctx context.Context, id int64) error
	StatsFunc        func(ctx context.Context) (domain.LetterStats, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetForUpdate []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx context.Context
			F   domain.LetterFilter
		}
		Create []struct {
			Ctx context.Context
			L   domain.Letter
		}
		Update []struct {
			Ctx context.Context
			Id  int64
			P   domain.LetterPatch
		}
		Transition []struct {
			Ctx context.Context
			Id  int64
			T   domain.LetterTransition
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockList         sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockTransition   sync.RWMutex
	lockDelete       sync.RWMutex
	lockStats        sync.RWMutex
}

func (mock *letterRepoMock) GetByID(ctx context.Context, id int64) (*domain.Letter, error) {
	if mock.GetByIDFunc == nil {
		panic("letterRepoMock.GetByIDFunc: method is nil but letterRepo.GetByID was just called")
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

func (mock *letterRepoMock) GetByIDCalls() []struct {
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

func (mock *letterRepoMock) GetForUpdate(ctx context.Context, id int64) (*domain.Letter, error) {
	if mock.GetForUpdateFunc == nil {
		panic("letterRepoMock.GetForUpdateFunc: method is nil but letterRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *letterRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *letterRepoMock) List(ctx context.Context, f domain.LetterFilter) ([]domain.Letter, error) {
	if mock.ListFunc == nil {
		panic("letterRepoMock.ListFunc: method is nil but letterRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.LetterFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *letterRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.LetterFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.LetterFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *letterRepoMock) Create(ctx context.Context, l domain.Letter) (*domain.Letter, error) {
	if mock.CreateFunc == nil {
		panic("letterRepoMock.CreateFunc: method is nil but letterRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.Letter
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *letterRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   domain.Letter
} {
	var calls []struct {
		Ctx context.Context
		L   domain.Letter
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *letterRepoMock) Update(ctx context.Context, id int64, p domain.LetterPatch) (*domain.Letter, error) {
	if mock.UpdateFunc == nil {
		panic("letterRepoMock.UpdateFunc: method is nil but letterRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
		P   domain.LetterPatch
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

func (mock *letterRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Id  int64
	P   domain.LetterPatch
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
		P   domain.LetterPatch
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *letterRepoMock) Transition(ctx context.Context, id int64, t domain.LetterTransition) (*domain.Letter, error) {
	if mock.TransitionFunc == nil {
		panic("letterRepoMock.TransitionFunc: method is nil but letterRepo.Transition was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
		T   domain.LetterTransition
	}{
		Ctx: ctx,
		Id:  id,
		T:   t,
	}
	mock.lockTransition.Lock()
	mock.calls.Transition = append(mock.calls.Transition, callInfo)
	mock.lockTransition.Unlock()
	return mock.TransitionFunc(ctx, id, t)
}

func (mock *letterRepoMock) TransitionCalls() []struct {
	Ctx context.Context
	Id  int64
	T   domain.LetterTransition
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
		T   domain.LetterTransition
	}
	mock.lockTransition.RLock()
	calls = mock.calls.Transition
	mock.lockTransition.RUnlock()
	return calls
}

func (mock *letterRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("letterRepoMock.DeleteFunc: method is nil but letterRepo.Delete was just called")
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

func (mock *letterRepoMock) DeleteCalls() []struct {
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

func (mock *letterRepoMock) Stats(ctx context.Context) (domain.LetterStats, error) {
	if mock.StatsFunc == nil {
		panic("letterRepoMock.StatsFunc: method is nil but letterRepo.Stats was just called")
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

func (mock *letterRepoMock) StatsCalls() []struct {
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
