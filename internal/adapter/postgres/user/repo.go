// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/docflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "telegram_user_id", "telegram_username", "name", "role", "is_active", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByTelegramID returns a user by external messaging id.
func (r *Repo) GetByTelegramID(ctx context.Context, telegramUserID string) (*domain.User, error) {
	b := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"telegram_user_id": telegramUserID})

	var row userRow
	if err := postgres.Get(ctx, r.q(ctx), &row, b); err != nil {
		return nil, postgres.MapError(err, "user", telegramUserID)
	}
	u := row.toDomain()
	return &u, nil
}

// Upsert creates the user with role=user and active=true on first contact,
// otherwise refreshes the display name and username. Role and active flag
// of an existing user are never touched.
func (r *Repo) Upsert(ctx context.Context, u domain.User) (*domain.User, error) {
	b := postgres.Builder.Insert(table).
		Columns("telegram_user_id", "telegram_username", "name", "role", "is_active").
		Values(u.TelegramUserID, u.TelegramUsername, u.Name, string(domain.RoleUser), true).
		Suffix(`ON CONFLICT (telegram_user_id) DO UPDATE SET
			telegram_username = EXCLUDED.telegram_username,
			name = EXCLUDED.name,
			updated_at = now()
		RETURNING ` + strings.Join(columns, ", "))

	var row userRow
	if err := postgres.Get(ctx, r.q(ctx), &row, b); err != nil {
		return nil, postgres.MapError(err, "user", u.TelegramUserID)
	}
	out := row.toDomain()
	return &out, nil
}

// ListActiveByRoles returns active users holding any of the given roles.
func (r *Repo) ListActiveByRoles(ctx context.Context, roles ...domain.Role) ([]domain.User, error) {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	b := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"role": names, "is_active": true}).
		OrderBy("id")

	var rows []userRow
	if err := postgres.Select(ctx, r.q(ctx), &rows, b); err != nil {
		return nil, fmt.Errorf("list users by roles: %w", err)
	}
	out := make([]domain.User, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// SetRole assigns a role to an existing user.
func (r *Repo) SetRole(ctx context.Context, telegramUserID string, role domain.Role) (*domain.User, error) {
	b := postgres.Builder.Update(table).
		Set("role", string(role)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"telegram_user_id": telegramUserID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row userRow
	if err := postgres.Get(ctx, r.q(ctx), &row, b); err != nil {
		return nil, postgres.MapError(err, "user", telegramUserID)
	}
	u := row.toDomain()
	return &u, nil
}

// SetActive enables or disables a user.
func (r *Repo) SetActive(ctx context.Context, telegramUserID string, active bool) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder.Update(table).
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"telegram_user_id": telegramUserID}))
	if err != nil {
		return postgres.MapError(err, "user", telegramUserID)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", telegramUserID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type userRow struct {
	ID               int64     `db:"id"`
	TelegramUserID   string    `db:"telegram_user_id"`
	TelegramUsername *string   `db:"telegram_username"`
	Name             string    `db:"name"`
	Role             string    `db:"role"`
	IsActive         bool      `db:"is_active"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:               r.ID,
		TelegramUserID:   r.TelegramUserID,
		TelegramUsername: r.TelegramUsername,
		Name:             r.Name,
		Role:             domain.Role(r.Role),
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
