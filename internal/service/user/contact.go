package user

import (
	"context"
	"fmt"
	"strconv"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// RegisterContact records the sender of an inbound message. New senders get
// role user; returning senders keep their role and have their name refreshed.
func (s *Service) RegisterContact(ctx context.Context, msg *domain.InboundMessage) (*domain.User, error) {
	var username *string
	if msg.Username != "" {
		username = &msg.Username
	}

	u, err := s.users.Upsert(ctx, domain.User{
		TelegramUserID:   strconv.FormatInt(msg.UserID, 10),
		TelegramUsername: username,
		Name:             msg.DisplayName(),
		Role:             domain.RoleUser,
		IsActive:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("user.RegisterContact: %w", err)
	}
	return u, nil
}

// Get returns a user by Telegram id.
func (s *Service) Get(ctx context.Context, telegramUserID string) (*domain.User, error) {
	u, err := s.users.GetByTelegramID(ctx, telegramUserID)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return u, nil
}
