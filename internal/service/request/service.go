// Package request implements change request management for administrators.
package request

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type requestRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	List(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error)
	Create(ctx context.Context, req domain.Request) (*domain.Request, error)
	Update(ctx context.Context, id int64, p domain.RequestPatch) (*domain.Request, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (domain.RequestStats, error)
}

type taskQueue interface {
	Enqueue(ctx context.Context, requestID int64, kind domain.TaskKind) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides request CRUD and statistics.
type Service struct {
	requests requestRepo
	queue    taskQueue
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new request service.
func NewService(log *slog.Logger, requests requestRepo, queue taskQueue, tx txManager) *Service {
	return &Service{
		requests: requests,
		queue:    queue,
		tx:       tx,
		log:      log.With("service", "request"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
