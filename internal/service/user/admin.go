package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/pkg/ctxutil"
)

// SetRole changes the role of a user. An authenticated admin cannot demote
// themselves.
func (s *Service) SetRole(ctx context.Context, input SetRoleInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	target := strings.TrimSpace(input.TelegramUserID)
	role := domain.Role(input.Role)

	if actor, ok := ctxutil.ActorFromCtx(ctx); ok && actor.TelegramUserID == target && role != domain.RoleAdmin {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	u, err := s.users.SetRole(ctx, target, role)
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("telegram_user_id", target),
		slog.String("new_role", role.String()),
	)
	return u, nil
}

// SetActive enables or disables notifications and access for a user.
func (s *Service) SetActive(ctx context.Context, telegramUserID string, active bool) error {
	if strings.TrimSpace(telegramUserID) == "" {
		return domain.NewValidationError("telegram_user_id", "required")
	}
	if err := s.users.SetActive(ctx, telegramUserID, active); err != nil {
		return fmt.Errorf("user.SetActive: %w", err)
	}

	s.log.InfoContext(ctx, "user activity updated",
		slog.String("telegram_user_id", telegramUserID),
		slog.Bool("active", active),
	)
	return nil
}

// ListStaff returns active admins and managers.
func (s *Service) ListStaff(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListActiveByRoles(ctx, domain.RoleAdmin, domain.RoleManager)
	if err != nil {
		return nil, fmt.Errorf("user.ListStaff: %w", err)
	}
	return users, nil
}
