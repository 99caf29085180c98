// Package letter implements composite letters: combining approved requests,
// the draft → pending_approval → signed → sent approval flow, and statistics.
package letter

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 200
)

type letterRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Letter, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Letter, error)
	List(ctx context.Context, f domain.LetterFilter) ([]domain.Letter, error)
	Create(ctx context.Context, l domain.Letter) (*domain.Letter, error)
	Update(ctx context.Context, id int64, p domain.LetterPatch) (*domain.Letter, error)
	Transition(ctx context.Context, id int64, t domain.LetterTransition) (*domain.Letter, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (domain.LetterStats, error)
}

type requestRepo interface {
	ListApprovedByIDs(ctx context.Context, ids []int64) ([]domain.Request, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Request, error)
	LockByIDs(ctx context.Context, ids []int64) ([]domain.Request, error)
	AttachToLetter(ctx context.Context, ids []int64, letterID int64, status *domain.RequestStatus) (int64, error)
	SetStatusByIDs(ctx context.Context, ids []int64, status domain.RequestStatus, detach bool) (int64, error)
}

type eventLog interface {
	Log(ctx context.Context, e domain.LetterEvent) error
	ListByLetter(ctx context.Context, letterID int64, limit int) ([]domain.LetterEvent, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type composer interface {
	ComposeLetter(ctx context.Context, title string, reqs []domain.Request) domain.LetterDraft
}

type notifier interface {
	NotifyRoles(ctx context.Context, text string, roles ...domain.Role) (sent, failed int)
}

// Service implements letter operations.
type Service struct {
	log      *slog.Logger
	letters  letterRepo
	requests requestRepo
	events   eventLog
	tx       txManager
	composer composer
	notifier notifier
	adminURL string
	now      func() time.Time
}

// NewService creates a new letter service. Every state change is appended
// to events in the same transaction. adminURL is linked from manager
// notifications.
func NewService(
	log *slog.Logger,
	letters letterRepo,
	requests requestRepo,
	events eventLog,
	tx txManager,
	composer composer,
	notifier notifier,
	adminURL string,
) *Service {
	return &Service{
		log:      log.With("service", "letter"),
		letters:  letters,
		requests: requests,
		events:   events,
		tx:       tx,
		composer: composer,
		notifier: notifier,
		adminURL: adminURL,
		now:      time.Now,
	}
}
