// Package letter implements the composite letter repository using PostgreSQL.
package letter

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/docflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const table = "letters"

var columns = []string{
	"id", "title", "content", "request_ids", "status", "manager_comment",
	"signed_at", "sent_at", "recipient_email", "created_by", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides letter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new letter repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByID returns a letter by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Letter, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate returns a letter and locks its row. Must run inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (*domain.Letter, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id int64, lock bool) (*domain.Letter, error) {
	b := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	var row letterRow
	if err := postgres.Get(ctx, r.q(ctx), &row, b); err != nil {
		return nil, postgres.MapError(err, "letter", id)
	}
	l := row.toDomain()
	return &l, nil
}

// List returns letters matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.LetterFilter) ([]domain.Letter, error) {
	b := postgres.Builder.Select(columns...).From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))
	if f.Status != nil {
		b = b.Where(squirrel.Eq{"status": string(*f.Status)})
	}

	var rows []letterRow
	if err := postgres.Select(ctx, r.q(ctx), &rows, b); err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}
	out := make([]domain.Letter, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Create inserts a draft letter.
func (r *Repo) Create(ctx context.Context, l domain.Letter) (*domain.Letter, error) {
	status := l.Status
	if status == "" {
		status = domain.LetterStatusDraft
	}
	ids := l.RequestIDs
	if ids == nil {
		ids = []int64{}
	}

	b := postgres.Builder.Insert(table).
		Columns("title", "content", "request_ids", "status", "created_by").
		Values(l.Title, l.Content, ids, string(status), l.CreatedBy).
		Suffix(returning)

	var row letterRow
	if err := postgres.Get(ctx, r.q(ctx), &row, b); err != nil {
		return nil, postgres.MapError(err, "letter", "new")
	}
	created := row.toDomain()
	return &created, nil
}

// Update merges the supplied content fields and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, id int64, p domain.LetterPatch) (*domain.Letter, error) {
	if p.IsEmpty() {
		return nil, domain.ErrNothingToUpdate
	}

	b := postgres.Builder.Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)
	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.Content != nil {
		b = b.Set("content", *p.Content)
	}
	if p.ManagerComment != nil {
		b = b.Set("manager_comment", *p.ManagerComment)
	}
	if p.RecipientEmail != nil {
		b = b.Set("recipient_email", *p.RecipientEmail)
	}

	var row letterRow
	if err := postgres.Get(ctx, r.q(ctx), &row, b); err != nil {
		return nil, postgres.MapError(err, "letter", id)
	}
	l := row.toDomain()
	return &l, nil
}

// Transition applies t when the letter is currently in one of t.From.
// Returns domain.ErrConflict when the guard does not match and
// domain.ErrNotFound when the letter does not exist.
func (r *Repo) Transition(ctx context.Context, id int64, t domain.LetterTransition) (*domain.Letter, error) {
	from := make([]string, len(t.From))
	for i, s := range t.From {
		from[i] = string(s)
	}

	b := postgres.Builder.Update(table).
		Set("status", string(t.To)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		Suffix(returning)
	if t.ManagerComment != nil {
		b = b.Set("manager_comment", *t.ManagerComment)
	}
	if t.SignedAt != nil {
		b = b.Set("signed_at", *t.SignedAt)
	} else if t.ClearSignedAt {
		b = b.Set("signed_at", nil)
	}
	if t.SentAt != nil {
		b = b.Set("sent_at", *t.SentAt)
	}
	if t.RecipientEmail != nil {
		b = b.Set("recipient_email", *t.RecipientEmail)
	}

	var row letterRow
	err := postgres.Get(ctx, r.q(ctx), &row, b)
	if err == nil {
		l := row.toDomain()
		return &l, nil
	}

	mapped := postgres.MapError(err, "letter", id)
	if !isNotFound(mapped) {
		return nil, mapped
	}
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, domain.NewConflictError("letter", id, fmt.Sprintf("cannot move to %s from current status", t.To))
}

// Delete removes a letter only while it is a draft.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder.Delete(table).
		Where(squirrel.Eq{"id": id, "status": string(domain.LetterStatusDraft)}))
	if err != nil {
		return postgres.MapError(err, "letter", id)
	}
	if n == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return domain.NewConflictError("letter", id, "only draft letters can be deleted")
	}
	return nil
}

// Stats returns per-status counts and per-month counts for the last 12 months.
func (r *Repo) Stats(ctx context.Context) (domain.LetterStats, error) {
	var byStatus []statusStatRow
	b := postgres.Builder.Select("status", "COUNT(*) AS count").
		From(table).
		GroupBy("status").
		OrderBy("status")
	if err := postgres.Select(ctx, r.q(ctx), &byStatus, b); err != nil {
		return domain.LetterStats{}, fmt.Errorf("letter stats by status: %w", err)
	}

	var byMonth []monthStatRow
	b = postgres.Builder.Select("to_char(date_trunc('month', created_at), 'YYYY-MM') AS month", "COUNT(*) AS count").
		From(table).
		Where("created_at >= now() - interval '12 months'").
		GroupBy("month").
		OrderBy("month DESC")
	if err := postgres.Select(ctx, r.q(ctx), &byMonth, b); err != nil {
		return domain.LetterStats{}, fmt.Errorf("letter stats by month: %w", err)
	}

	stats := domain.LetterStats{
		ByStatus: make([]domain.LetterStatusStat, len(byStatus)),
		ByMonth:  make([]domain.LetterMonthStat, len(byMonth)),
	}
	for i, s := range byStatus {
		stats.ByStatus[i] = domain.LetterStatusStat{Status: domain.LetterStatus(s.Status), Count: int(s.Count)}
	}
	for i, m := range byMonth {
		stats.ByMonth[i] = domain.LetterMonthStat{Month: m.Month, Count: int(m.Count)}
	}
	return stats, nil
}
