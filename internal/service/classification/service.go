// Package classification runs the background enrichment queue: requests are
// classified or transcribed by a polling worker with at-least-once delivery.
package classification

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/docflow-backend/internal/config"
	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/internal/service/ai"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type queueRepo interface {
	Enqueue(ctx context.Context, requestID int64, kind domain.TaskKind) error
	ClaimBatch(ctx context.Context, limit int) ([]domain.ClassificationTask, error)
	MarkDone(ctx context.Context, requestID int64) error
	MarkFailed(ctx context.Context, requestID int64, errMsg string, retry bool) error
	GetStats(ctx context.Context) (domain.QueueStats, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.ClassificationTask, error)
	RetryAllFailed(ctx context.Context) (int, error)
	ResetProcessing(ctx context.Context) (int, error)
	DeleteDoneBefore(ctx context.Context, before time.Time) (int, error)
}

type requestReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
}

type enricher interface {
	ClassifyRequest(ctx context.Context, input ai.ClassifyInput) (domain.Classification, error)
	Transcribe(ctx context.Context, input ai.TranscribeInput) (ai.Transcription, error)
}

// Service owns the classification queue.
type Service struct {
	log      *slog.Logger
	queue    queueRepo
	requests requestReader
	enricher enricher
	cfg      config.WorkerConfig
	now      func() time.Time
}

// NewService creates a new classification queue service.
func NewService(log *slog.Logger, queue queueRepo, requests requestReader, enricher enricher, cfg config.WorkerConfig) *Service {
	return &Service{
		log:      log.With("service", "classification"),
		queue:    queue,
		requests: requests,
		enricher: enricher,
		cfg:      cfg,
		now:      time.Now,
	}
}
