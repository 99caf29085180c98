// Package telegram wraps the Telegram Bot API used by the intake bot and
// staff notifications.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/heartmarshall/docflow-backend/internal/config"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// Bot sends messages and manages the webhook. The underlying library has no
// context support; calls are bounded by the HTTP client timeout instead.
type Bot struct {
	api        *tgbotapi.BotAPI
	fileURL    string
	webhookURL string
}

// New builds a Bot without contacting Telegram.
// Returns domain.ErrNotConfigured when the token is empty.
func New(cfg config.TelegramConfig) (*Bot, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("telegram bot: %w", domain.ErrNotConfigured)
	}

	api := &tgbotapi.BotAPI{
		Token:  cfg.BotToken,
		Client: &http.Client{Timeout: cfg.Timeout},
		Buffer: 100,
	}
	api.SetAPIEndpoint(cfg.APIEndpoint)

	return &Bot{
		api:        api,
		fileURL:    cfg.FileURL,
		webhookURL: cfg.WebhookURL,
	}, nil
}

// SendMessage delivers an HTML-formatted text to a chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send to %d: %w", chatID, err)
	}
	return nil
}

// FileURL resolves a file id into a direct download URL.
func (b *Bot) FileURL(ctx context.Context, fileID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("telegram get file %s: %w", fileID, err)
	}
	if file.FilePath == "" {
		return "", fmt.Errorf("telegram get file %s: empty file path", fileID)
	}
	return fmt.Sprintf(b.fileURL, b.api.Token, file.FilePath), nil
}

// SetWebhook registers url (or the configured URL when url is empty) and
// subscribes to message updates only. Returns the URL that was set.
func (b *Bot) SetWebhook(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if url == "" {
		url = b.webhookURL
	}
	if url == "" {
		return "", domain.NewValidationError("url", "webhook url is not configured")
	}

	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return "", domain.NewValidationError("url", "invalid webhook url")
	}
	wh.AllowedUpdates = []string{"message"}

	if _, err := b.api.Request(wh); err != nil {
		return "", fmt.Errorf("telegram set webhook: %w", err)
	}
	return url, nil
}

// WebhookInfo returns the current webhook registration.
func (b *Bot) WebhookInfo(ctx context.Context) (domain.WebhookInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.WebhookInfo{}, err
	}

	info, err := b.api.GetWebhookInfo()
	if err != nil {
		return domain.WebhookInfo{}, fmt.Errorf("telegram webhook info: %w", err)
	}

	out := domain.WebhookInfo{
		URL:                  info.URL,
		HasCustomCertificate: info.HasCustomCertificate,
		PendingUpdateCount:   info.PendingUpdateCount,
		LastErrorMessage:     info.LastErrorMessage,
		MaxConnections:       info.MaxConnections,
		AllowedUpdates:       info.AllowedUpdates,
	}
	if info.LastErrorDate > 0 {
		t := time.Unix(int64(info.LastErrorDate), 0).UTC()
		out.LastErrorDate = &t
	}
	return out, nil
}

// ParseChatID converts a stored Telegram user id into a chat id.
// Private chats share the user's id.
func ParseChatID(telegramUserID string) (int64, error) {
	id, err := strconv.ParseInt(telegramUserID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid telegram id %q: %w", telegramUserID, err)
	}
	return id, nil
}

// ParseUpdate decodes a webhook body. It returns nil when the update carries
// no message (edited messages, callbacks and similar are ignored).
func ParseUpdate(body []byte) (*domain.InboundMessage, error) {
	var upd tgbotapi.Update
	if err := json.Unmarshal(body, &upd); err != nil {
		return nil, domain.NewValidationError("body", "invalid telegram update")
	}

	m := upd.Message
	if m == nil || m.From == nil || m.Chat == nil {
		return nil, nil
	}

	in := &domain.InboundMessage{
		ChatID:    m.Chat.ID,
		UserID:    m.From.ID,
		Username:  m.From.UserName,
		FirstName: m.From.FirstName,
		LastName:  m.From.LastName,
		Text:      m.Text,
	}
	if m.IsCommand() {
		in.Command = m.Command()
	}
	if m.Voice != nil {
		in.VoiceFileID = m.Voice.FileID
		in.VoiceDuration = m.Voice.Duration
	}
	return in, nil
}
