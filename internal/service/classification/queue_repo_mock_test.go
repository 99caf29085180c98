package classification

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"sync"
	"time"
)

var _ queueRepo = &queueRepoMock{}

type queueRepoMock struct {
	EnqueueFunc          func(ctx context.Context, requestID int64, kind domain.TaskKind) error
	ClaimBatchFunc       func(ctx context.Context, limit int) ([]domain.ClassificationTask, error)
	MarkDoneFunc         func(ctx context.Context, requestID int64) error
	MarkFailedFunc       func(ctx context.Context, requestID int64, errMsg string, retry bool) error
	GetStatsFunc         func(ctx context.Context) (domain.QueueStats, error)
	ListFunc             func(ctx context.Context, status string, limit int, offset int) ([]domain.ClassificationTask, error)
	RetryAllFailedFunc   func(ctx context.Context) (int, error)
	ResetProcessingFunc  func(ctx context.Context) (int, error)
	DeleteDoneBeforeFunc func(ctx context.Context, before time.Time) (int, error)

	calls struct {
		Enqueue []struct {
			Ctx       context.Context
			RequestID int64
			Kind      domain.TaskKind
		}
		ClaimBatch []struct {
			Ctx   context.Context
			Limit int
		}
		MarkDone []struct {
			Ctx       context.Context
			RequestID int64
		}
		MarkFailed []struct {
			Ctx       context.Context
			RequestID int64
			ErrMsg    string
			Retry     bool
		}
		GetStats []struct {
			Ctx context.Context
		}
		List []struct {
			Ctx    context.Context
			Status string
			Limit  int
			Offset int
		}
		RetryAllFailed []struct {
			Ctx context.Context
		}
		ResetProcessing []struct {
			Ctx context.Context
		}
		DeleteDoneBefore []struct {
			Ctx    context.Context
			Before time.Time
		}
	}
	lockEnqueue          sync.RWMutex
	lockClaimBatch       sync.RWMutex
	lockMarkDone         sync.RWMutex
	lockMarkFailed       sync.RWMutex
	lockGetStats         sync.RWMutex
	lockList             sync.RWMutex
	lockRetryAllFailed   sync.RWMutex
	lockResetProcessing  sync.RWMutex
	lockDeleteDoneBefore sync.RWMutex
}

func (mock *queueRepoMock) Enqueue(ctx context.Context, requestID int64, kind domain.TaskKind) error {
	if mock.EnqueueFunc == nil {
		panic("queueRepoMock.EnqueueFunc: method is nil but queueRepo.Enqueue was just called")
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

func (mock *queueRepoMock) EnqueueCalls() []struct {
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

func (mock *queueRepoMock) ClaimBatch(ctx context.Context, limit int) ([]domain.ClassificationTask, error) {
	if mock.ClaimBatchFunc == nil {
		panic("queueRepoMock.ClaimBatchFunc: method is nil but queueRepo.ClaimBatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockClaimBatch.Lock()
	mock.calls.ClaimBatch = append(mock.calls.ClaimBatch, callInfo)
	mock.lockClaimBatch.Unlock()
	return mock.ClaimBatchFunc(ctx, limit)
}

func (mock *queueRepoMock) ClaimBatchCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockClaimBatch.RLock()
	calls = mock.calls.ClaimBatch
	mock.lockClaimBatch.RUnlock()
	return calls
}

func (mock *queueRepoMock) MarkDone(ctx context.Context, requestID int64) error {
	if mock.MarkDoneFunc == nil {
		panic("queueRepoMock.MarkDoneFunc: method is nil but queueRepo.MarkDone was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID int64
	}{
		Ctx:       ctx,
		RequestID: requestID,
	}
	mock.lockMarkDone.Lock()
	mock.calls.MarkDone = append(mock.calls.MarkDone, callInfo)
	mock.lockMarkDone.Unlock()
	return mock.MarkDoneFunc(ctx, requestID)
}

func (mock *queueRepoMock) MarkDoneCalls() []struct {
	Ctx       context.Context
	RequestID int64
} {
	var calls []struct {
		Ctx       context.Context
		RequestID int64
	}
	mock.lockMarkDone.RLock()
	calls = mock.calls.MarkDone
	mock.lockMarkDone.RUnlock()
	return calls
}

func (mock *queueRepoMock) MarkFailed(ctx context.Context, requestID int64, errMsg string, retry bool) error {
	if mock.MarkFailedFunc == nil {
		panic("queueRepoMock.MarkFailedFunc: method is nil but queueRepo.MarkFailed was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RequestID int64
		ErrMsg    string
		Retry     bool
	}{
		Ctx:       ctx,
		RequestID: requestID,
		ErrMsg:    errMsg,
		Retry:     retry,
	}
	mock.lockMarkFailed.Lock()
	mock.calls.MarkFailed = append(mock.calls.MarkFailed, callInfo)
	mock.lockMarkFailed.Unlock()
	return mock.MarkFailedFunc(ctx, requestID, errMsg, retry)
}

func (mock *queueRepoMock) MarkFailedCalls() []struct {
	Ctx       context.Context
	RequestID int64
	ErrMsg    string
	Retry     bool
} {
	var calls []struct {
		Ctx       context.Context
		RequestID int64
		ErrMsg    string
		Retry     bool
	}
	mock.lockMarkFailed.RLock()
	calls = mock.calls.MarkFailed
	mock.lockMarkFailed.RUnlock()
	return calls
}

func (mock *queueRepoMock) GetStats(ctx context.Context) (domain.QueueStats, error) {
	if mock.GetStatsFunc == nil {
		panic("queueRepoMock.GetStatsFunc: method is nil but queueRepo.GetStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetStats.Lock()
	mock.calls.GetStats = append(mock.calls.GetStats, callInfo)
	mock.lockGetStats.Unlock()
	return mock.GetStatsFunc(ctx)
}

func (mock *queueRepoMock) GetStatsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetStats.RLock()
	calls = mock.calls.GetStats
	mock.lockGetStats.RUnlock()
	return calls
}

func (mock *queueRepoMock) List(ctx context.Context, status string, limit int, offset int) ([]domain.ClassificationTask, error) {
	if mock.ListFunc == nil {
		panic("queueRepoMock.ListFunc: method is nil but queueRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status string
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Status: status,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, status, limit, offset)
}

func (mock *queueRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Status string
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		Status string
		Limit  int
		Offset int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *queueRepoMock) RetryAllFailed(ctx context.Context) (int, error) {
	if mock.RetryAllFailedFunc == nil {
		panic("queueRepoMock.RetryAllFailedFunc: method is nil but queueRepo.RetryAllFailed was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockRetryAllFailed.Lock()
	mock.calls.RetryAllFailed = append(mock.calls.RetryAllFailed, callInfo)
	mock.lockRetryAllFailed.Unlock()
	return mock.RetryAllFailedFunc(ctx)
}

func (mock *queueRepoMock) RetryAllFailedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockRetryAllFailed.RLock()
	calls = mock.calls.RetryAllFailed
	mock.lockRetryAllFailed.RUnlock()
	return calls
}

func (mock *queueRepoMock) ResetProcessing(ctx context.Context) (int, error) {
	if mock.ResetProcessingFunc == nil {
		panic("queueRepoMock.ResetProcessingFunc: method is nil but queueRepo.ResetProcessing was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockResetProcessing.Lock()
	mock.calls.ResetProcessing = append(mock.calls.ResetProcessing, callInfo)
	mock.lockResetProcessing.Unlock()
	return mock.ResetProcessingFunc(ctx)
}

func (mock *queueRepoMock) ResetProcessingCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockResetProcessing.RLock()
	calls = mock.calls.ResetProcessing
	mock.lockResetProcessing.RUnlock()
	return calls
}

func (mock *queueRepoMock) DeleteDoneBefore(ctx context.Context, before time.Time) (int, error) {
	if mock.DeleteDoneBeforeFunc == nil {
		panic("queueRepoMock.DeleteDoneBeforeFunc: method is nil but queueRepo.DeleteDoneBefore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Before time.Time
	}{
		Ctx:    ctx,
		Before: before,
	}
	mock.lockDeleteDoneBefore.Lock()
	mock.calls.DeleteDoneBefore = append(mock.calls.DeleteDoneBefore, callInfo)
	mock.lockDeleteDoneBefore.Unlock()
	return mock.DeleteDoneBeforeFunc(ctx, before)
}

func (mock *queueRepoMock) DeleteDoneBeforeCalls() []struct {
	Ctx    context.Context
	Before time.Time
} {
	var calls []struct {
		Ctx    context.Context
		Before time.Time
	}
	mock.lockDeleteDoneBefore.RLock()
	calls = mock.calls.DeleteDoneBefore
	mock.lockDeleteDoneBefore.RUnlock()
	return calls
}
