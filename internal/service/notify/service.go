// Package notify fans Telegram messages out to staff by role.
package notify

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/telegram"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const maxParallelSends = 5

type userRepo interface {
	ListActiveByRoles(ctx context.Context, roles ...domain.Role) ([]domain.User, error)
}

type sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Service delivers notifications. Delivery is best effort: failures are
// logged and counted, never returned.
type Service struct {
	log    *slog.Logger
	users  userRepo
	sender sender
}

// NewService creates a notification service. A nil sender disables delivery.
func NewService(log *slog.Logger, users userRepo, sender sender) *Service {
	return &Service{
		log:    log.With("service", "notify"),
		users:  users,
		sender: sender,
	}
}

// NotifyRoles sends text to every active user holding one of roles.
func (s *Service) NotifyRoles(ctx context.Context, text string, roles ...domain.Role) (sent, failed int) {
	users, err := s.users.ListActiveByRoles(ctx, roles...)
	if err != nil {
		s.log.ErrorContext(ctx, "list recipients", slog.String("error", err.Error()))
		return 0, 0
	}

	chatIDs := make([]int64, 0, len(users))
	for _, u := range users {
		id, err := telegram.ParseChatID(u.TelegramUserID)
		if err != nil {
			s.log.WarnContext(ctx, "skip recipient with invalid chat id",
				slog.String("telegram_user_id", u.TelegramUserID))
			failed++
			continue
		}
		chatIDs = append(chatIDs, id)
	}

	ok, bad := s.Notify(ctx, chatIDs, text)
	return ok, failed + bad
}

// Notify sends text to each chat concurrently.
func (s *Service) Notify(ctx context.Context, chatIDs []int64, text string) (sent, failed int) {
	if len(chatIDs) == 0 {
		return 0, 0
	}
	if s.sender == nil {
		s.log.WarnContext(ctx, "telegram not configured, notification dropped",
			slog.Int("recipients", len(chatIDs)))
		return 0, len(chatIDs)
	}

	var okCount, errCount atomic.Int64
	var g errgroup.Group
	g.SetLimit(maxParallelSends)

	for _, id := range chatIDs {
		g.Go(func() error {
			if err := s.sender.SendMessage(ctx, id, text); err != nil {
				errCount.Add(1)
				s.log.WarnContext(ctx, "notification failed",
					slog.Int64("chat_id", id),
					slog.String("error", err.Error()))
				return nil
			}
			okCount.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(okCount.Load()), int(errCount.Load())
}
