package classification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/service/ai"
)

// errPermanent marks failures that retrying cannot fix.
var errPermanent = errors.New("permanent failure")

// Run polls the queue until ctx is cancelled. Tasks left in processing by a
// previous run are returned to pending first.
func (s *Service) Run(ctx context.Context) error {
	if n, err := s.queue.ResetProcessing(ctx); err != nil {
		s.log.ErrorContext(ctx, "reset stuck tasks", slog.String("error", err.Error()))
	} else if n > 0 {
		s.log.InfoContext(ctx, "stuck tasks returned to pending", slog.Int("count", n))
	}

	interval := s.cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.InfoContext(ctx, "classification worker started", slog.Duration("poll_interval", interval))

	for {
		// Drain full batches before waiting for the next tick.
		for {
			n, err := s.ProcessBatch(ctx)
			if err != nil {
				if ctx.Err() != nil {
					break
				}
				s.log.ErrorContext(ctx, "process batch", slog.String("error", err.Error()))
				break
			}
			if n < s.batchSize() {
				break
			}
		}

		select {
		case <-ctx.Done():
			s.log.InfoContext(context.WithoutCancel(ctx), "classification worker stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Service) batchSize() int {
	if s.cfg.BatchSize <= 0 {
		return 10
	}
	return s.cfg.BatchSize
}

func (s *Service) maxAttempts() int {
	if s.cfg.MaxAttempts <= 0 {
		return 3
	}
	return s.cfg.MaxAttempts
}

// ProcessBatch claims and processes one batch. It returns the number of
// tasks claimed.
func (s *Service) ProcessBatch(ctx context.Context) (int, error) {
	tasks, err := s.queue.ClaimBatch(ctx, s.batchSize())
	if err != nil {
		return 0, fmt.Errorf("claim batch: %w", err)
	}

	for _, t := range tasks {
		if ctx.Err() != nil {
			// Unprocessed tasks stay in processing and are reset on next start.
			return len(tasks), ctx.Err()
		}
		s.handle(ctx, t)
	}
	return len(tasks), nil
}

func (s *Service) handle(ctx context.Context, t domain.ClassificationTask) {
	err := s.process(ctx, t)
	if err == nil {
		if err := s.queue.MarkDone(ctx, t.RequestID); err != nil {
			s.log.ErrorContext(ctx, "mark task done",
				slog.Int64("request_id", t.RequestID),
				slog.String("error", err.Error()))
		}
		return
	}

	retry := !errors.Is(err, errPermanent) && t.Attempts < s.maxAttempts()
	s.log.WarnContext(ctx, "task failed",
		slog.Int64("request_id", t.RequestID),
		slog.String("kind", string(t.Kind)),
		slog.Int("attempts", t.Attempts),
		slog.Bool("retry", retry),
		slog.String("error", err.Error()))

	if err := s.queue.MarkFailed(ctx, t.RequestID, err.Error(), retry); err != nil {
		s.log.ErrorContext(ctx, "mark task failed",
			slog.Int64("request_id", t.RequestID),
			slog.String("error", err.Error()))
	}
}

func (s *Service) process(ctx context.Context, t domain.ClassificationTask) error {
	req, err := s.requests.GetByID(ctx, t.RequestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("request %d: %w", t.RequestID, errPermanent)
		}
		return err
	}

	id := req.ID
	switch t.Kind {
	case domain.TaskKindAnalyze:
		// Defaults are stored only once the model has failed on every attempt.
		_, err = s.enricher.ClassifyRequest(ctx, ai.ClassifyInput{
			RequestID: id,
			Text:      req.MessageText,
			Fallback:  t.Attempts >= s.maxAttempts(),
		})
	case domain.TaskKindTranscribe:
		if req.AudioFileURL == nil || *req.AudioFileURL == "" {
			return fmt.Errorf("request %d has no audio: %w", id, errPermanent)
		}
		_, err = s.enricher.Transcribe(ctx, ai.TranscribeInput{AudioURL: *req.AudioFileURL, RequestID: &id})
	default:
		return fmt.Errorf("unknown task kind %q: %w", t.Kind, errPermanent)
	}

	if errors.Is(err, domain.ErrValidation) {
		return fmt.Errorf("%w: %w", errPermanent, err)
	}
	return err
}
