// Package classification implements the classification task queue using PostgreSQL.
package classification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/docflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const table = "classification_queue"

var columns = []string{
	"id", "request_id", "kind", "status", "attempts", "error_message", "requested_at", "processed_at", "created_at",
}

// Repo provides classification queue persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new classification queue repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Enqueue adds a task for a request. Re-enqueueing the same request resets
// it to pending, so a request has at most one task row.
func (r *Repo) Enqueue(ctx context.Context, requestID int64, kind domain.TaskKind) error {
	b := postgres.Builder.Insert(table).
		Columns("request_id", "kind").
		Values(requestID, string(kind)).
		Suffix(`ON CONFLICT (request_id) DO UPDATE SET
			kind = EXCLUDED.kind,
			status = 'pending',
			attempts = 0,
			error_message = NULL,
			requested_at = now(),
			processed_at = NULL`)

	if _, err := postgres.Exec(ctx, r.q(ctx), b); err != nil {
		return postgres.MapError(err, "classification_task", requestID)
	}
	return nil
}

const claimBatchSQL = `
UPDATE classification_queue
SET status = 'processing', attempts = attempts + 1
WHERE id IN (
	SELECT id FROM classification_queue
	WHERE status = 'pending'
	ORDER BY requested_at
	LIMIT $1
	FOR UPDATE SKIP LOCKED
)
RETURNING `

// ClaimBatch claims up to limit pending tasks for processing.
func (r *Repo) ClaimBatch(ctx context.Context, limit int) ([]domain.ClassificationTask, error) {
	var rows []taskRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, claimBatchSQL+strings.Join(columns, ", "), limit); err != nil {
		return nil, fmt.Errorf("classification.ClaimBatch: %w", err)
	}
	return toDomainTasks(rows), nil
}

// MarkDone marks a task as successfully processed.
func (r *Repo) MarkDone(ctx context.Context, requestID int64) error {
	b := postgres.Builder.Update(table).
		Set("status", string(domain.TaskStatusDone)).
		Set("error_message", nil).
		Set("processed_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"request_id": requestID})
	if _, err := postgres.Exec(ctx, r.q(ctx), b); err != nil {
		return fmt.Errorf("classification.MarkDone: %w", err)
	}
	return nil
}

// MarkFailed records an error. With retry the task returns to pending,
// otherwise it is parked as failed.
func (r *Repo) MarkFailed(ctx context.Context, requestID int64, errMsg string, retry bool) error {
	status := domain.TaskStatusFailed
	if retry {
		status = domain.TaskStatusPending
	}
	b := postgres.Builder.Update(table).
		Set("status", string(status)).
		Set("error_message", errMsg).
		Set("processed_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"request_id": requestID})
	if _, err := postgres.Exec(ctx, r.q(ctx), b); err != nil {
		return fmt.Errorf("classification.MarkFailed: %w", err)
	}
	return nil
}

// GetStats returns aggregate counts by status.
func (r *Repo) GetStats(ctx context.Context) (domain.QueueStats, error) {
	b := postgres.Builder.Select(
		"COUNT(*) FILTER (WHERE status = 'pending') AS pending",
		"COUNT(*) FILTER (WHERE status = 'processing') AS processing",
		"COUNT(*) FILTER (WHERE status = 'done') AS done",
		"COUNT(*) FILTER (WHERE status = 'failed') AS failed",
		"COUNT(*) AS total",
	).From(table)

	var row statsRow
	if err := postgres.Get(ctx, r.q(ctx), &row, b); err != nil {
		return domain.QueueStats{}, fmt.Errorf("classification.GetStats: %w", err)
	}
	return domain.QueueStats{
		Pending:    int(row.Pending),
		Processing: int(row.Processing),
		Done:       int(row.Done),
		Failed:     int(row.Failed),
		Total:      int(row.Total),
	}, nil
}

// List returns tasks filtered by status (empty = all) with pagination.
func (r *Repo) List(ctx context.Context, status string, limit, offset int) ([]domain.ClassificationTask, error) {
	b := postgres.Builder.Select(columns...).From(table).
		OrderBy("requested_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if status != "" {
		b = b.Where(squirrel.Eq{"status": status})
	}

	var rows []taskRow
	if err := postgres.Select(ctx, r.q(ctx), &rows, b); err != nil {
		return nil, fmt.Errorf("classification.List: %w", err)
	}
	return toDomainTasks(rows), nil
}

// RetryAllFailed resets all failed tasks to pending.
func (r *Repo) RetryAllFailed(ctx context.Context) (int, error) {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder.Update(table).
		Set("status", string(domain.TaskStatusPending)).
		Set("attempts", 0).
		Set("requested_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"status": string(domain.TaskStatusFailed)}))
	if err != nil {
		return 0, fmt.Errorf("classification.RetryAllFailed: %w", err)
	}
	return int(n), nil
}

// ResetProcessing resets all processing tasks back to pending (stuck items).
func (r *Repo) ResetProcessing(ctx context.Context) (int, error) {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder.Update(table).
		Set("status", string(domain.TaskStatusPending)).
		Where(squirrel.Eq{"status": string(domain.TaskStatusProcessing)}))
	if err != nil {
		return 0, fmt.Errorf("classification.ResetProcessing: %w", err)
	}
	return int(n), nil
}

type taskRow struct {
	ID           int64      `db:"id"`
	RequestID    int64      `db:"request_id"`
	Kind         string     `db:"kind"`
	Status       string     `db:"status"`
	Attempts     int32      `db:"attempts"`
	ErrorMessage *string    `db:"error_message"`
	RequestedAt  time.Time  `db:"requested_at"`
	ProcessedAt  *time.Time `db:"processed_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

type statsRow struct {
	Pending    int64 `db:"pending"`
	Processing int64 `db:"processing"`
	Done       int64 `db:"done"`
	Failed     int64 `db:"failed"`
	Total      int64 `db:"total"`
}

func toDomainTasks(rows []taskRow) []domain.ClassificationTask {
	items := make([]domain.ClassificationTask, len(rows))
	for i, row := range rows {
		items[i] = domain.ClassificationTask{
			ID:           row.ID,
			RequestID:    row.RequestID,
			Kind:         domain.TaskKind(row.Kind),
			Status:       domain.TaskStatus(row.Status),
			Attempts:     int(row.Attempts),
			ErrorMessage: row.ErrorMessage,
			RequestedAt:  row.RequestedAt,
			ProcessedAt:  row.ProcessedAt,
			CreatedAt:    row.CreatedAt,
		}
	}
	return items
}

// DeleteDoneBefore removes finished tasks processed before the given time.
func (r *Repo) DeleteDoneBefore(ctx context.Context, before time.Time) (int, error) {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder.Delete(table).
		Where(squirrel.Eq{"status": string(domain.TaskStatusDone)}).
		Where(squirrel.Lt{"processed_at": before}))
	if err != nil {
		return 0, fmt.Errorf("classification.DeleteDoneBefore: %w", err)
	}
	return int(n), nil
}
