// Package user manages Telegram identities and their staff roles.
package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

type userRepo interface {
	GetByTelegramID(ctx context.Context, telegramUserID string) (*domain.User, error)
	Upsert(ctx context.Context, u domain.User) (*domain.User, error)
	ListActiveByRoles(ctx context.Context, roles ...domain.Role) ([]domain.User, error)
	SetRole(ctx context.Context, telegramUserID string, role domain.Role) (*domain.User, error)
	SetActive(ctx context.Context, telegramUserID string, active bool) error
}

// Service implements user registration and role administration.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
