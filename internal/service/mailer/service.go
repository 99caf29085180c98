// Package mailer delivers signed letters by e-mail and keeps the send log.
package mailer

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/email"
	"github.com/heartmarshall/docflow-backend/internal/config"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const (
	DefaultLogLimit = 50
	MaxLogLimit     = 500
)

type letterReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Letter, error)
}

type letterMarker interface {
	MarkSent(ctx context.Context, id int64, recipient string) (*domain.Letter, error)
}

type logRepo interface {
	Create(ctx context.Context, l domain.EmailLog) (*domain.EmailLog, error)
	List(ctx context.Context, status *domain.EmailStatus, limit int) ([]domain.EmailLog, error)
	Stats(ctx context.Context) (domain.EmailStats, error)
}

type sender interface {
	Send(ctx context.Context, m email.Message) (string, error)
	Provider() string
}

// Service sends letters and test messages.
type Service struct {
	log     *slog.Logger
	letters letterReader
	marker  letterMarker
	logs    logRepo
	sender  sender
	cfg     config.EmailConfig
	now     func() time.Time
}

// NewService creates a mailer. A nil sender makes every send fail with
// domain.ErrNotConfigured.
func NewService(
	log *slog.Logger,
	letters letterReader,
	marker letterMarker,
	logs logRepo,
	sender sender,
	cfg config.EmailConfig,
) *Service {
	return &Service{
		log:     log.With("service", "mailer"),
		letters: letters,
		marker:  marker,
		logs:    logs,
		sender:  sender,
		cfg:     cfg,
		now:     time.Now,
	}
}
