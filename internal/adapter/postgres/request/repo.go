// Package request implements the change request repository using PostgreSQL.
package request

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/docflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const table = "requests"

var columns = []string{
	"id", "telegram_user_id", "telegram_username", "user_name", "message_text",
	"audio_file_url", "transcribed_text", "category", "urgency_level", "change_type",
	"doc_section", "ai_summary", "status", "is_approved", "admin_comment", "letter_id",
	"created_at", "updated_at",
}

// Repo provides request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new request repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectRequests() squirrel.SelectBuilder {
	return postgres.Builder.Select(columns...).From(table)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a request by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	var row requestRow
	err := postgres.Get(ctx, r.q(ctx), &row, selectRequests().Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "request", id)
	}
	req := row.toDomain()
	return &req, nil
}

// List returns requests matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error) {
	b := selectRequests().
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))
	if f.Status != nil {
		b = b.Where(squirrel.Eq{"status": string(*f.Status)})
	}
	if f.Category != nil {
		b = b.Where(squirrel.Eq{"category": string(*f.Category)})
	}

	var rows []requestRow
	if err := postgres.Select(ctx, r.q(ctx), &rows, b); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return toDomainRequests(rows), nil
}

// ListByTelegramUser returns the latest requests submitted by one user.
func (r *Repo) ListByTelegramUser(ctx context.Context, telegramUserID string, limit int) ([]domain.Request, error) {
	b := selectRequests().
		Where(squirrel.Eq{"telegram_user_id": telegramUserID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	var rows []requestRow
	if err := postgres.Select(ctx, r.q(ctx), &rows, b); err != nil {
		return nil, fmt.Errorf("list requests by user %s: %w", telegramUserID, err)
	}
	return toDomainRequests(rows), nil
}

// ListApprovedByIDs returns the approved requests among ids, oldest first.
func (r *Repo) ListApprovedByIDs(ctx context.Context, ids []int64) ([]domain.Request, error) {
	if len(ids) == 0 {
		return []domain.Request{}, nil
	}
	b := selectRequests().
		Where(squirrel.Eq{"id": ids, "is_approved": true}).
		OrderBy("created_at ASC", "id ASC")

	var rows []requestRow
	if err := postgres.Select(ctx, r.q(ctx), &rows, b); err != nil {
		return nil, fmt.Errorf("list approved requests: %w", err)
	}
	return toDomainRequests(rows), nil
}

// ListByIDs returns the requests among ids, oldest first.
func (r *Repo) ListByIDs(ctx context.Context, ids []int64) ([]domain.Request, error) {
	if len(ids) == 0 {
		return []domain.Request{}, nil
	}
	b := selectRequests().
		Where(squirrel.Eq{"id": ids}).
		OrderBy("created_at ASC", "id ASC")

	var rows []requestRow
	if err := postgres.Select(ctx, r.q(ctx), &rows, b); err != nil {
		return nil, fmt.Errorf("list requests by ids: %w", err)
	}
	return toDomainRequests(rows), nil
}

// LockByIDs selects the requests among ids FOR UPDATE. Must run inside a transaction.
func (r *Repo) LockByIDs(ctx context.Context, ids []int64) ([]domain.Request, error) {
	if len(ids) == 0 {
		return []domain.Request{}, nil
	}
	b := selectRequests().
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		Suffix("FOR UPDATE")

	var rows []requestRow
	if err := postgres.Select(ctx, r.q(ctx), &rows, b); err != nil {
		return nil, fmt.Errorf("lock requests: %w", err)
	}
	return toDomainRequests(rows), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new request and returns the stored record.
func (r *Repo) Create(ctx context.Context, req domain.Request) (*domain.Request, error) {
	status := req.Status
	if status == "" {
		status = domain.RequestStatusNew
	}
	urgency := req.UrgencyLevel
	if urgency == 0 {
		urgency = domain.DefaultUrgency
	}

	b := postgres.Builder.Insert(table).
		Columns("telegram_user_id", "telegram_username", "user_name", "message_text",
			"audio_file_url", "transcribed_text", "category", "urgency_level", "change_type", "doc_section", "status").
		Values(req.TelegramUserID, req.TelegramUsername, req.UserName, req.MessageText,
			req.AudioFileURL, req.TranscribedText, enumPtr(req.Category), urgency,
			enumPtr(req.ChangeType), enumPtr(req.DocSection), string(status)).
		Suffix("RETURNING " + joinColumns())

	var row requestRow
	if err := postgres.Get(ctx, r.q(ctx), &row, b); err != nil {
		return nil, postgres.MapError(err, "request", "new")
	}
	created := row.toDomain()
	return &created, nil
}

// Update merges the supplied fields and always refreshes updated_at.
func (r *Repo) Update(ctx context.Context, id int64, p domain.RequestPatch) (*domain.Request, error) {
	if p.IsEmpty() {
		return nil, domain.ErrNothingToUpdate
	}

	b := postgres.Builder.Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns())
	if p.Status != nil {
		b = b.Set("status", string(*p.Status))
	}
	if p.IsApproved != nil {
		b = b.Set("is_approved", *p.IsApproved)
	}
	if p.AdminComment != nil {
		b = b.Set("admin_comment", *p.AdminComment)
	}
	if p.Category != nil {
		b = b.Set("category", string(*p.Category))
	}
	if p.UrgencyLevel != nil {
		b = b.Set("urgency_level", *p.UrgencyLevel)
	}
	if p.ChangeType != nil {
		b = b.Set("change_type", string(*p.ChangeType))
	}
	if p.DocSection != nil {
		b = b.Set("doc_section", string(*p.DocSection))
	}

	var row requestRow
	if err := postgres.Get(ctx, r.q(ctx), &row, b); err != nil {
		return nil, postgres.MapError(err, "request", id)
	}
	updated := row.toDomain()
	return &updated, nil
}

// Delete removes a request. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "request", id)
	}
	if n == 0 {
		return fmt.Errorf("request %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ApplyClassification overwrites the classification fields. Safe to repeat.
func (r *Repo) ApplyClassification(ctx context.Context, id int64, c domain.Classification) error {
	b := postgres.Builder.Update(table).
		Set("category", string(c.Category)).
		Set("urgency_level", c.Urgency).
		Set("change_type", string(c.ChangeType)).
		Set("doc_section", string(c.DocSection)).
		Set("ai_summary", c.Summary).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, r.q(ctx), b)
	if err != nil {
		return postgres.MapError(err, "request", id)
	}
	if n == 0 {
		return fmt.Errorf("request %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ApplyTranscription stores recognized speech as the request text.
func (r *Repo) ApplyTranscription(ctx context.Context, id int64, text string) error {
	b := postgres.Builder.Update(table).
		Set("transcribed_text", text).
		Set("message_text", text).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, r.q(ctx), b)
	if err != nil {
		return postgres.MapError(err, "request", id)
	}
	if n == 0 {
		return fmt.Errorf("request %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AttachToLetter points the requests at a letter and, when status is given,
// moves them to that status. Returns the number of rows changed.
func (r *Repo) AttachToLetter(ctx context.Context, ids []int64, letterID int64, status *domain.RequestStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	b := postgres.Builder.Update(table).
		Set("letter_id", letterID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": ids})
	if status != nil {
		b = b.Set("status", string(*status))
	}

	n, err := postgres.Exec(ctx, r.q(ctx), b)
	if err != nil {
		return 0, fmt.Errorf("attach requests to letter %d: %w", letterID, err)
	}
	return n, nil
}

// SetStatusByIDs moves every request among ids to status. When detach is
// true the letter reference is cleared as well.
func (r *Repo) SetStatusByIDs(ctx context.Context, ids []int64, status domain.RequestStatus, detach bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	b := postgres.Builder.Update(table).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": ids})
	if detach {
		b = b.Set("letter_id", nil)
	}

	n, err := postgres.Exec(ctx, r.q(ctx), b)
	if err != nil {
		return 0, fmt.Errorf("set request status %s: %w", status, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------------

// Stats returns per-status and per-category counts.
func (r *Repo) Stats(ctx context.Context) (domain.RequestStats, error) {
	var byStatus []statusStatRow
	b := postgres.Builder.
		Select("status", "COUNT(*) AS count", "COALESCE(AVG(urgency_level), 0)::float8 AS avg_urgency").
		From(table).
		GroupBy("status").
		OrderBy("status")
	if err := postgres.Select(ctx, r.q(ctx), &byStatus, b); err != nil {
		return domain.RequestStats{}, fmt.Errorf("request stats by status: %w", err)
	}

	var byCategory []categoryStatRow
	b = postgres.Builder.
		Select("category", "COUNT(*) AS count").
		From(table).
		GroupBy("category").
		OrderBy("count DESC")
	if err := postgres.Select(ctx, r.q(ctx), &byCategory, b); err != nil {
		return domain.RequestStats{}, fmt.Errorf("request stats by category: %w", err)
	}

	stats := domain.RequestStats{
		ByStatus:   make([]domain.RequestStatusStat, len(byStatus)),
		ByCategory: make([]domain.RequestCategoryStat, len(byCategory)),
	}
	for i, s := range byStatus {
		stats.ByStatus[i] = domain.RequestStatusStat{
			Status:     domain.RequestStatus(s.Status),
			Count:      int(s.Count),
			AvgUrgency: s.AvgUrgency,
		}
	}
	for i, c := range byCategory {
		var cat *domain.Category
		if c.Category != nil {
			v := domain.Category(*c.Category)
			cat = &v
		}
		stats.ByCategory[i] = domain.RequestCategoryStat{Category: cat, Count: int(c.Count)}
	}
	return stats, nil
}
