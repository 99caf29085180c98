package testhelper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts an active user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{
		TelegramUserID: "tg-" + suffix,
		Name:           "Test User " + suffix,
		Role:           role,
		IsActive:       true,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (telegram_user_id, name, role, is_active)
		 VALUES ($1, $2, $3, TRUE)
		 RETURNING id, created_at, updated_at`,
		u.TelegramUserID, u.Name, string(u.Role),
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedRequest inserts a request in status new with the given text.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, text string) domain.Request {
	t.Helper()

	suffix := uniqueSuffix()
	r := domain.Request{
		TelegramUserID: "tg-" + suffix,
		UserName:       "Author " + suffix,
		MessageText:    text,
		UrgencyLevel:   domain.DefaultUrgency,
		Status:         domain.RequestStatusNew,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO requests (telegram_user_id, user_name, message_text)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		r.TelegramUserID, r.UserName, r.MessageText,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest: %v", err)
	}
	return r
}

// SeedApprovedRequest inserts a request that an admin has approved.
func SeedApprovedRequest(t *testing.T, pool *pgxpool.Pool, text string, section domain.DocSection) domain.Request {
	t.Helper()

	r := SeedRequest(t, pool, text)
	_, err := pool.Exec(context.Background(),
		`UPDATE requests SET status = 'approved', is_approved = TRUE, doc_section = $2 WHERE id = $1`,
		r.ID, string(section),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApprovedRequest: %v", err)
	}
	r.Status = domain.RequestStatusApproved
	r.IsApproved = true
	r.DocSection = &section
	return r
}

// SeedLetter inserts a letter in the given status referencing requestIDs.
func SeedLetter(t *testing.T, pool *pgxpool.Pool, status domain.LetterStatus, requestIDs ...int64) domain.Letter {
	t.Helper()

	if requestIDs == nil {
		requestIDs = []int64{}
	}
	raw, err := json.Marshal(requestIDs)
	if err != nil {
		t.Fatalf("testhelper: SeedLetter marshal ids: %v", err)
	}

	l := domain.Letter{
		Title:      "Letter " + uniqueSuffix(),
		Content:    "<p>body</p>",
		RequestIDs: requestIDs,
		Status:     status,
	}
	err = pool.QueryRow(context.Background(),
		`INSERT INTO letters (title, content, request_ids, status)
		 VALUES ($1, $2, $3::jsonb, $4)
		 RETURNING id, created_at, updated_at`,
		l.Title, l.Content, string(raw), string(l.Status),
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLetter: %v", err)
	}

	if len(requestIDs) > 0 {
		_, err = pool.Exec(context.Background(),
			`UPDATE requests SET letter_id = $1, status = 'in_progress' WHERE id = ANY($2)`,
			l.ID, requestIDs,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedLetter attach requests: %v", err)
		}
	}
	return l
}
