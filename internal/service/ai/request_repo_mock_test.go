package ai

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"sync"
)

var _ requestRepo = &requestRepoMock{}

type requestRepoMock struct {
	ApplyClassificationFunc func(ctx context.Context, id int64, c domain.Classification) error
	ApplyTranscriptionFunc  func(ctx context.Context, id int64, text string) error

	calls struct {
		ApplyClassification []struct {
			Ctx context.Context
			Id  int64
			C   domain.Classification
		}
		ApplyTranscription []struct {
			Ctx  context.Context
			Id   int64
			Text string
		}
	}
	lockApplyClassification sync.RWMutex
	lockApplyTranscription  sync.RWMutex
}

func (mock *requestRepoMock) ApplyClassification(ctx context.Context, id int64, c domain.Classification) error {
	if mock.ApplyClassificationFunc == nil {
		panic("requestRepoMock.ApplyClassificationFunc: method is nil but requestRepo.ApplyClassification was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
		C   domain.Classification
	}{
		Ctx: ctx,
		Id:  id,
		C:   c,
	}
	mock.lockApplyClassification.Lock()
	mock.calls.ApplyClassification = append(mock.calls.ApplyClassification, callInfo)
	mock.lockApplyClassification.Unlock()
	return mock.ApplyClassificationFunc(ctx, id, c)
}

func (mock *requestRepoMock) ApplyClassificationCalls() []struct {
	Ctx context.Context
	Id  int64
	C   domain.Classification
} {
	var calls []struct {
		Ctx context.Context
		Id  int64
		C   domain.Classification
	}
	mock.lockApplyClassification.RLock()
	calls = mock.calls.ApplyClassification
	mock.lockApplyClassification.RUnlock()
	return calls
}

func (mock *requestRepoMock) ApplyTranscription(ctx context.Context, id int64, text string) error {
	if mock.ApplyTranscriptionFunc == nil {
		panic("requestRepoMock.ApplyTranscriptionFunc: method is nil but requestRepo.ApplyTranscription was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   int64
		Text string
	}{
		Ctx:  ctx,
		Id:   id,
		Text: text,
	}
	mock.lockApplyTranscription.Lock()
	mock.calls.ApplyTranscription = append(mock.calls.ApplyTranscription, callInfo)
	mock.lockApplyTranscription.Unlock()
	return mock.ApplyTranscriptionFunc(ctx, id, text)
}

func (mock *requestRepoMock) ApplyTranscriptionCalls() []struct {
	Ctx  context.Context
	Id   int64
	Text string
} {
	var calls []struct {
		Ctx  context.Context
		Id   int64
		Text string
	}
	mock.lockApplyTranscription.RLock()
	calls = mock.calls.ApplyTranscription
	mock.lockApplyTranscription.RUnlock()
	return calls
}
