package user

import (
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/telegram"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// SetRoleInput holds parameters for a role change.
type SetRoleInput struct {
	TelegramUserID string
	Role           string
}

// Validate validates the role change input.
func (i SetRoleInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.TelegramUserID) == "" {
		errs = append(errs, domain.FieldError{Field: "telegram_user_id", Message: "required"})
	} else if _, err := telegram.ParseChatID(i.TelegramUserID); err != nil {
		errs = append(errs, domain.FieldError{Field: "telegram_user_id", Message: "must be numeric"})
	}

	if !domain.Role(i.Role).IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be one of user, admin, manager"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
