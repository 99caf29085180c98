package domain

import "time"

// Role is the access level of a user.
type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleManager:
		return true
	}
	return false
}

// User maps an external messaging identity to a role.
// Users are created on first contact with role=user and active=true.
type User struct {
	ID               int64
	TelegramUserID   string
	TelegramUsername *string
	Name             string
	Role             Role
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
