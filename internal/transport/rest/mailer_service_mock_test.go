package rest

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/service/mailer"
	"sync"
)

var _ mailerService = &mailerServiceMock{}

type mailerServiceMock struct {
	SendLetterFunc   func(ctx context.Context, input mailer.SendLetterInput) (*mailer.SendResult, error)
	SendTestFunc     func(ctx context.Context, input mailer.SendTestInput) (*mailer.SendResult, error)
	LogsFunc         func(ctx context.Context, input mailer.LogsInput) ([]domain.EmailLog, error)
	StatsFunc        func(ctx context.Context) (domain.EmailStats, error)
	ConfigStatusFunc func() mailer.ConfigStatus

	calls struct {
		SendLetter []struct {
			Ctx   context.Context
			Input mailer.SendLetterInput
		}
		SendTest []struct {
			Ctx   context.Context
			Input mailer.SendTestInput
		}
		Logs []struct {
			Ctx   context.Context
			Input mailer.LogsInput
		}
		Stats []struct {
			Ctx context.Context
		}
		ConfigStatus []struct{}
	}
	lockSendLetter   sync.RWMutex
	lockSendTest     sync.RWMutex
	lockLogs         sync.RWMutex
	lockStats        sync.RWMutex
	lockConfigStatus sync.RWMutex
}

func (mock *mailerServiceMock) SendLetter(ctx context.Context, input mailer.SendLetterInput) (*mailer.SendResult, error) {
	if mock.SendLetterFunc == nil {
		panic("mailerServiceMock.SendLetterFunc: method is nil but mailerService.SendLetter was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input mailer.SendLetterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSendLetter.Lock()
	mock.calls.SendLetter = append(mock.calls.SendLetter, callInfo)
	mock.lockSendLetter.Unlock()
	return mock.SendLetterFunc(ctx, input)
}

func (mock *mailerServiceMock) SendLetterCalls() []struct {
	Ctx   context.Context
	Input mailer.SendLetterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input mailer.SendLetterInput
	}
	mock.lockSendLetter.RLock()
	calls = mock.calls.SendLetter
	mock.lockSendLetter.RUnlock()
	return calls
}

func (mock *mailerServiceMock) SendTest(ctx context.Context, input mailer.SendTestInput) (*mailer.SendResult, error) {
	if mock.SendTestFunc == nil {
		panic("mailerServiceMock.SendTestFunc: method is nil but mailerService.SendTest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input mailer.SendTestInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSendTest.Lock()
	mock.calls.SendTest = append(mock.calls.SendTest, callInfo)
	mock.lockSendTest.Unlock()
	return mock.SendTestFunc(ctx, input)
}

func (mock *mailerServiceMock) SendTestCalls() []struct {
	Ctx   context.Context
	Input mailer.SendTestInput
} {
	var calls []struct {
		Ctx   context.Context
		Input mailer.SendTestInput
	}
	mock.lockSendTest.RLock()
	calls = mock.calls.SendTest
	mock.lockSendTest.RUnlock()
	return calls
}

func (mock *mailerServiceMock) Logs(ctx context.Context, input mailer.LogsInput) ([]domain.EmailLog, error) {
	if mock.LogsFunc == nil {
		panic("mailerServiceMock.LogsFunc: method is nil but mailerService.Logs was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input mailer.LogsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogs.Lock()
	mock.calls.Logs = append(mock.calls.Logs, callInfo)
	mock.lockLogs.Unlock()
	return mock.LogsFunc(ctx, input)
}

func (mock *mailerServiceMock) LogsCalls() []struct {
	Ctx   context.Context
	Input mailer.LogsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input mailer.LogsInput
	}
	mock.lockLogs.RLock()
	calls = mock.calls.Logs
	mock.lockLogs.RUnlock()
	return calls
}

func (mock *mailerServiceMock) Stats(ctx context.Context) (domain.EmailStats, error) {
	if mock.StatsFunc == nil {
		panic("mailerServiceMock.StatsFunc: method is nil but mailerService.Stats was just called")
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

func (mock *mailerServiceMock) StatsCalls() []struct {
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

func (mock *mailerServiceMock) ConfigStatus() mailer.ConfigStatus {
	if mock.ConfigStatusFunc == nil {
		panic("mailerServiceMock.ConfigStatusFunc: method is nil but mailerService.ConfigStatus was just called")
	}
	mock.lockConfigStatus.Lock()
	mock.calls.ConfigStatus = append(mock.calls.ConfigStatus, struct{}{})
	mock.lockConfigStatus.Unlock()
	return mock.ConfigStatusFunc()
}

func (mock *mailerServiceMock) ConfigStatusCalls() []struct{} {
	var calls []struct{}
	mock.lockConfigStatus.RLock()
	calls = mock.calls.ConfigStatus
	mock.lockConfigStatus.RUnlock()
	return calls
}
