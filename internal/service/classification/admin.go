package classification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// Enqueue schedules a task for a request. Re-enqueueing resets the task.
func (s *Service) Enqueue(ctx context.Context, requestID int64, kind domain.TaskKind) error {
	if requestID <= 0 {
		return domain.NewValidationError("request_id", "must be positive")
	}
	if !kind.IsValid() {
		return domain.NewValidationError("kind", "must be analyze or transcribe")
	}
	if err := s.queue.Enqueue(ctx, requestID, kind); err != nil {
		return fmt.Errorf("enqueue: %w", err)
	}
	return nil
}

// Stats returns queue counts by status.
func (s *Service) Stats(ctx context.Context) (domain.QueueStats, error) {
	st, err := s.queue.GetStats(ctx)
	if err != nil {
		return domain.QueueStats{}, fmt.Errorf("queue stats: %w", err)
	}
	return st, nil
}

// List returns tasks, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]domain.ClassificationTask, error) {
	if status != "" && !domain.TaskStatus(status).IsValid() {
		return nil, domain.NewValidationError("status", "invalid value")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	tasks, err := s.queue.List(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// RetryFailed returns every failed task to pending.
func (s *Service) RetryFailed(ctx context.Context) (int, error) {
	n, err := s.queue.RetryAllFailed(ctx)
	if err != nil {
		return 0, fmt.Errorf("retry failed: %w", err)
	}
	s.log.InfoContext(ctx, "failed tasks requeued", slog.Int("count", n))
	return n, nil
}

// ResetStuck returns tasks left in processing to pending. Only safe while no
// worker is running.
func (s *Service) ResetStuck(ctx context.Context) (int, error) {
	n, err := s.queue.ResetProcessing(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset stuck: %w", err)
	}
	s.log.InfoContext(ctx, "stuck tasks reset", slog.Int("count", n))
	return n, nil
}

// PruneDone deletes finished tasks older than olderThan, falling back to the
// configured retention when olderThan is not positive.
func (s *Service) PruneDone(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		olderThan = s.cfg.DoneRetention
	}
	if olderThan <= 0 {
		return 0, domain.NewValidationError("older_than", "must be positive")
	}

	before := s.now().Add(-olderThan)
	n, err := s.queue.DeleteDoneBefore(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("prune done: %w", err)
	}
	s.log.InfoContext(ctx, "done tasks pruned",
		slog.Int("count", n),
		slog.Time("before", before),
	)
	return n, nil
}
