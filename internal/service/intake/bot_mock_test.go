package intake

import (
	"context"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"sync"
)

var _ bot = &botMock{}

type botMock struct {
	SendMessageFunc func(ctx context.Context, chatID int64, text string) error
	FileURLFunc     func(ctx context.Context, fileID string) (string, error)
	SetWebhookFunc  func(ctx context.Context, url string) (string, error)
	WebhookInfoFunc func(ctx context.Context) (domain.WebhookInfo, error)

	calls struct {
		SendMessage []struct {
			Ctx    context.Context
			ChatID int64
			Text   string
		}
		FileURL []struct {
			Ctx    context.Context
			FileID string
		}
		SetWebhook []struct {
			Ctx context.Context
			Url string
		}
		WebhookInfo []struct {
			Ctx context.Context
		}
	}
	lockSendMessage sync.RWMutex
	lockFileURL     sync.RWMutex
	lockSetWebhook  sync.RWMutex
	lockWebhookInfo sync.RWMutex
}

func (mock *botMock) SendMessage(ctx context.Context, chatID int64, text string) error {
	if mock.SendMessageFunc == nil {
		panic("botMock.SendMessageFunc: method is nil but bot.SendMessage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ChatID int64
		Text   string
	}{
		Ctx:    ctx,
		ChatID: chatID,
		Text:   text,
	}
	mock.lockSendMessage.Lock()
	mock.calls.SendMessage = append(mock.calls.SendMessage, callInfo)
	mock.lockSendMessage.Unlock()
	return mock.SendMessageFunc(ctx, chatID, text)
}

func (mock *botMock) SendMessageCalls() []struct {
	Ctx    context.Context
	ChatID int64
	Text   string
} {
	var calls []struct {
		Ctx    context.Context
		ChatID int64
		Text   string
	}
	mock.lockSendMessage.RLock()
	calls = mock.calls.SendMessage
	mock.lockSendMessage.RUnlock()
	return calls
}

func (mock *botMock) FileURL(ctx context.Context, fileID string) (string, error) {
	if mock.FileURLFunc == nil {
		panic("botMock.FileURLFunc: method is nil but bot.FileURL was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FileID string
	}{
		Ctx:    ctx,
		FileID: fileID,
	}
	mock.lockFileURL.Lock()
	mock.calls.FileURL = append(mock.calls.FileURL, callInfo)
	mock.lockFileURL.Unlock()
	return mock.FileURLFunc(ctx, fileID)
}

func (mock *botMock) FileURLCalls() []struct {
	Ctx    context.Context
	FileID string
} {
	var calls []struct {
		Ctx    context.Context
		FileID string
	}
	mock.lockFileURL.RLock()
	calls = mock.calls.FileURL
	mock.lockFileURL.RUnlock()
	return calls
}

func (mock *botMock) SetWebhook(ctx context.Context, url string) (string, error) {
	if mock.SetWebhookFunc == nil {
		panic("botMock.SetWebhookFunc: method is nil but bot.SetWebhook was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Url string
	}{
		Ctx: ctx,
		Url: url,
	}
	mock.lockSetWebhook.Lock()
	mock.calls.SetWebhook = append(mock.calls.SetWebhook, callInfo)
	mock.lockSetWebhook.Unlock()
	return mock.SetWebhookFunc(ctx, url)
}

func (mock *botMock) SetWebhookCalls() []struct {
	Ctx context.Context
	Url string
} {
	var calls []struct {
		Ctx context.Context
		Url string
	}
	mock.lockSetWebhook.RLock()
	calls = mock.calls.SetWebhook
	mock.lockSetWebhook.RUnlock()
	return calls
}

func (mock *botMock) WebhookInfo(ctx context.Context) (domain.WebhookInfo, error) {
	if mock.WebhookInfoFunc == nil {
		panic("botMock.WebhookInfoFunc: method is nil but bot.WebhookInfo was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockWebhookInfo.Lock()
	mock.calls.WebhookInfo = append(mock.calls.WebhookInfo, callInfo)
	mock.lockWebhookInfo.Unlock()
	return mock.WebhookInfoFunc(ctx)
}

func (mock *botMock) WebhookInfoCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockWebhookInfo.RLock()
	calls = mock.calls.WebhookInfo
	mock.lockWebhookInfo.RUnlock()
	return calls
}
