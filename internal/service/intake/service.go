// Package intake turns Telegram bot messages into change requests.
package intake

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const statusHistoryLimit = 5

type contactRegistry interface {
	RegisterContact(ctx context.Context, msg *domain.InboundMessage) (*domain.User, error)
}

type requestRepo interface {
	Create(ctx context.Context, req domain.Request) (*domain.Request, error)
	ListByTelegramUser(ctx context.Context, telegramUserID string, limit int) ([]domain.Request, error)
}

type taskQueue interface {
	Enqueue(ctx context.Context, requestID int64, kind domain.TaskKind) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type bot interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	FileURL(ctx context.Context, fileID string) (string, error)
	SetWebhook(ctx context.Context, url string) (string, error)
	WebhookInfo(ctx context.Context) (domain.WebhookInfo, error)
}

type notifier interface {
	NotifyRoles(ctx context.Context, text string, roles ...domain.Role) (sent, failed int)
}

// Service handles inbound bot updates.
type Service struct {
	log      *slog.Logger
	contacts contactRegistry
	requests requestRepo
	queue    taskQueue
	tx       txManager
	bot      bot
	notifier notifier
	adminURL string
	loc      *time.Location
}

// NewService creates an intake service. A nil bot means Telegram is not
// configured: updates are still stored but replies are dropped.
func NewService(
	log *slog.Logger,
	contacts contactRegistry,
	requests requestRepo,
	queue taskQueue,
	tx txManager,
	bot bot,
	notifier notifier,
	adminURL string,
) *Service {
	return &Service{
		log:      log.With("service", "intake"),
		contacts: contacts,
		requests: requests,
		queue:    queue,
		tx:       tx,
		bot:      bot,
		notifier: notifier,
		adminURL: adminURL,
		loc:      time.UTC,
	}
}

// reply sends text to the chat, logging failures.
func (s *Service) reply(ctx context.Context, chatID int64, text string) {
	if s.bot == nil {
		s.log.WarnContext(ctx, "telegram not configured, reply dropped", slog.Int64("chat_id", chatID))
		return
	}
	if err := s.bot.SendMessage(ctx, chatID, text); err != nil {
		s.log.WarnContext(ctx, "reply failed",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()))
	}
}
