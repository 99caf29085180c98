package intake

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"sync"
)

var _ taskQueue = &taskQueueMock{}

type taskQueueMock struct {
	EnqueueFunc func(ctx context.Context, requestID int64, kind domain.TaskKind) error

	calls struct {
		Enqueue []struct {
			Ctx       context.Context
			RequestID int64
			Kind      domain.TaskKind
		}
	}
	lockEnqueue sync.RWMutex
}

func (mock *taskQueueMock) Enqueue(ctx context.Context, requestID int64, kind domain.TaskKind) error {
	if mock.EnqueueFunc == nil {
		panic("taskQueueMock.EnqueueFunc: method is nil but taskQueue.Enqueue was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID int64
		Kind      domain.TaskKind
	}{
		Ctx:       ctx,
		RequestID: requestID,
		Kind:      kind,
	}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	return mock.EnqueueFunc(ctx, requestID, kind)
}

func (mock *taskQueueMock) EnqueueCalls() []struct {
	Ctx       context.Context
	RequestID int64
	Kind      domain.TaskKind
} {
	var calls []struct {
		Ctx       context.Context
		RequestID int64
		Kind      domain.TaskKind
	}
	mock.lockEnqueue.RLock()
	calls = mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
	return calls
}
