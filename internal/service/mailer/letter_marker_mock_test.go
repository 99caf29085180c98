package mailer

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"sync"
)

var _ letterMarker = &letterMarkerMock{}

type letterMarkerMock struct {
	MarkSentFunc func(ctx context.Context, id int64, recipient string) (*domain.Letter, error)

	calls struct {
		MarkSent []struct {
			Ctx       context.Context
			Id        int64
			Recipient string
		}
	}
	lockMarkSent sync.RWMutex
}

func (mock *letterMarkerMock) MarkSent(ctx context.Context, id int64, recipient string) (*domain.Letter, error) {
	if mock.MarkSentFunc == nil {
		panic("letterMarkerMock.MarkSentFunc: method is nil but letterMarker.MarkSent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Id        int64
		Recipient string
	}{
		Ctx:       ctx,
		Id:        id,
		Recipient: recipient,
	}
	mock.lockMarkSent.Lock()
	mock.calls.MarkSent = append(mock.calls.MarkSent, callInfo)
	mock.lockMarkSent.Unlock()
	return mock.MarkSentFunc(ctx, id, recipient)
}

func (mock *letterMarkerMock) MarkSentCalls() []struct {
	Ctx       context.Context
	Id        int64
	Recipient string
} {
	var calls []struct {
		Ctx       context.Context
		Id        int64
		Recipient string
	}
	mock.lockMarkSent.RLock()
	calls = mock.calls.MarkSent
	mock.lockMarkSent.RUnlock()
	return calls
}
