// Package emaillog implements the append-only e-mail audit log using PostgreSQL.
package emaillog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/docflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const table = "email_logs"

var columns = []string{
	"id", "letter_id", "recipient_email", "subject", "status", "error_message", "provider_message_id", "sent_at",
}

// Repo provides e-mail log persistence. Rows are inserted, never updated.
type Repo struct {
	db postgres.Querier
}

// New creates a new e-mail log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create appends one send attempt.
func (r *Repo) Create(ctx context.Context, l domain.EmailLog) (*domain.EmailLog, error) {
	b := postgres.Builder.Insert(table).
		Columns("letter_id", "recipient_email", "subject", "status", "error_message", "provider_message_id").
		Values(l.LetterID, l.RecipientEmail, l.Subject, string(l.Status), l.ErrorMessage, l.ProviderMessageID).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row logRow
	if err := postgres.Get(ctx, r.q(ctx), &row, b); err != nil {
		return nil, postgres.MapError(err, "email_log", "new")
	}
	out := row.toDomain()
	return &out, nil
}

// List returns the latest attempts, optionally filtered by outcome.
func (r *Repo) List(ctx context.Context, status *domain.EmailStatus, limit int) ([]domain.EmailLog, error) {
	b := postgres.Builder.Select(columns...).From(table).
		OrderBy("sent_at DESC", "id DESC").
		Limit(uint64(limit))
	if status != nil {
		b = b.Where(squirrel.Eq{"status": string(*status)})
	}

	var rows []logRow
	if err := postgres.Select(ctx, r.q(ctx), &rows, b); err != nil {
		return nil, fmt.Errorf("list email logs: %w", err)
	}
	out := make([]domain.EmailLog, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Stats returns per-outcome counts for the last 30 days and daily totals
// for the last 7 days.
func (r *Repo) Stats(ctx context.Context) (domain.EmailStats, error) {
	var byStatus []statusRow
	b := postgres.Builder.Select("status", "COUNT(*) AS count").
		From(table).
		Where("sent_at >= now() - interval '30 days'").
		GroupBy("status").
		OrderBy("status")
	if err := postgres.Select(ctx, r.q(ctx), &byStatus, b); err != nil {
		return domain.EmailStats{}, fmt.Errorf("email stats by status: %w", err)
	}

	var daily []dailyRow
	b = postgres.Builder.Select(
		"to_char(date_trunc('day', sent_at), 'YYYY-MM-DD') AS date",
		"COUNT(*) AS total",
		"COUNT(*) FILTER (WHERE status = 'sent') AS successful",
		"COUNT(*) FILTER (WHERE status = 'error') AS failed",
	).
		From(table).
		Where("sent_at >= now() - interval '7 days'").
		GroupBy("date").
		OrderBy("date DESC")
	if err := postgres.Select(ctx, r.q(ctx), &daily, b); err != nil {
		return domain.EmailStats{}, fmt.Errorf("email daily stats: %w", err)
	}

	stats := domain.EmailStats{
		ByStatus: make([]domain.EmailStatusStat, len(byStatus)),
		Daily:    make([]domain.EmailDailyStat, len(daily)),
	}
	for i, s := range byStatus {
		stats.ByStatus[i] = domain.EmailStatusStat{Status: domain.EmailStatus(s.Status), Count: int(s.Count)}
	}
	for i, d := range daily {
		stats.Daily[i] = domain.EmailDailyStat{
			Date:       d.Date,
			Total:      int(d.Total),
			Successful: int(d.Successful),
			Failed:     int(d.Failed),
		}
	}
	return stats, nil
}

type logRow struct {
	ID                int64     `db:"id"`
	LetterID          *int64    `db:"letter_id"`
	RecipientEmail    string    `db:"recipient_email"`
	Subject           string    `db:"subject"`
	Status            string    `db:"status"`
	ErrorMessage      *string   `db:"error_message"`
	ProviderMessageID *string   `db:"provider_message_id"`
	SentAt            time.Time `db:"sent_at"`
}

type statusRow struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

type dailyRow struct {
	Date       string `db:"date"`
	Total      int64  `db:"total"`
	Successful int64  `db:"successful"`
	Failed     int64  `db:"failed"`
}

func (r logRow) toDomain() domain.EmailLog {
	return domain.EmailLog{
		ID:                r.ID,
		LetterID:          r.LetterID,
		RecipientEmail:    r.RecipientEmail,
		Subject:           r.Subject,
		Status:            domain.EmailStatus(r.Status),
		ErrorMessage:      r.ErrorMessage,
		ProviderMessageID: r.ProviderMessageID,
		SentAt:            r.SentAt,
	}
}
