package classification

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"sync"
)

var _ requestReader = &requestReaderMock{}

type requestReaderMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Request, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *requestReaderMock) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	if mock.GetByIDFunc == nil {
		panic("requestReaderMock.GetByIDFunc: method is nil but requestReader.GetByID was just called")
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

func (mock *requestReaderMock) GetByIDCalls() []struct {
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
