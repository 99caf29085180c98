package request

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// Create stores a new request with status new.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Request, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	urgency := domain.DefaultUrgency
	if input.UrgencyLevel != nil {
		urgency = *input.UrgencyLevel
	}

	task, enrich := input.enrichment()

	var req *domain.Request
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.requests.Create(ctx, domain.Request{
			TelegramUserID:   strings.TrimSpace(input.TelegramUserID),
			TelegramUsername: trimOrNil(input.TelegramUsername),
			UserName:         strings.TrimSpace(input.UserName),
			MessageText:      strings.TrimSpace(input.MessageText),
			AudioFileURL:     trimOrNil(input.AudioFileURL),
			TranscribedText:  trimOrNil(input.TranscribedText),
			Category:         enumOrNil[domain.Category](input.Category),
			UrgencyLevel:     urgency,
			ChangeType:       enumOrNil[domain.ChangeType](input.ChangeType),
			DocSection:       enumOrNil[domain.DocSection](input.DocSection),
			Status:           domain.RequestStatusNew,
		})
		if err != nil {
			return err
		}
		req = created
		if !enrich {
			return nil
		}
		return s.queue.Enqueue(ctx, created.ID, task)
	})
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	attrs := []any{
		slog.Int64("request_id", req.ID),
		slog.String("telegram_user_id", req.TelegramUserID),
	}
	if enrich {
		attrs = append(attrs, slog.String("task", string(task)))
	}
	s.log.InfoContext(ctx, "request created", attrs...)
	return req, nil
}

// enrichment picks the queue task for a request created without a category.
// Audio that has not been transcribed yet goes through transcription first.
func (i CreateInput) enrichment() (domain.TaskKind, bool) {
	if i.Category != nil {
		return "", false
	}
	if trimOrNil(i.AudioFileURL) != nil && trimOrNil(i.TranscribedText) == nil {
		return domain.TaskKindTranscribe, true
	}
	return domain.TaskKindAnalyze, true
}

func enumOrNil[T ~string](v *string) *T {
	if v == nil {
		return nil
	}
	e := T(*v)
	return &e
}
