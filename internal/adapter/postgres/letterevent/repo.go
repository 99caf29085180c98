// Package letterevent implements the append-only letter audit trail using
// PostgreSQL.
package letterevent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/docflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const table = "letter_events"

var columns = []string{
	"id", "letter_id", "action", "from_status", "to_status", "actor", "comment", "created_at",
}

// Repo provides letter event persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new letter event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create appends an event and returns the stored row.
func (r *Repo) Create(ctx context.Context, e domain.LetterEvent) (*domain.LetterEvent, error) {
	b := postgres.Builder.Insert(table).
		Columns("letter_id", "action", "from_status", "to_status", "actor", "comment").
		Values(e.LetterID, string(e.Action), statusPtr(e.FromStatus), statusPtr(e.ToStatus), e.Actor, e.Comment).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row eventRow
	if err := postgres.Get(ctx, r.q(ctx), &row, b); err != nil {
		return nil, postgres.MapError(err, "letter_event", e.LetterID)
	}
	out := row.toDomain()
	return &out, nil
}

// Log appends an event. Runs in the caller's transaction when ctx carries one.
func (r *Repo) Log(ctx context.Context, e domain.LetterEvent) error {
	_, err := r.Create(ctx, e)
	return err
}

// ListByLetter returns the history of one letter, newest first.
func (r *Repo) ListByLetter(ctx context.Context, letterID int64, limit int) ([]domain.LetterEvent, error) {
	b := postgres.Builder.Select(columns...).From(table).
		Where(squirrel.Eq{"letter_id": letterID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	var rows []eventRow
	if err := postgres.Select(ctx, r.q(ctx), &rows, b); err != nil {
		return nil, fmt.Errorf("list letter events: %w", err)
	}
	out := make([]domain.LetterEvent, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type eventRow struct {
	ID         int64     `db:"id"`
	LetterID   int64     `db:"letter_id"`
	Action     string    `db:"action"`
	FromStatus *string   `db:"from_status"`
	ToStatus   *string   `db:"to_status"`
	Actor      *string   `db:"actor"`
	Comment    *string   `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r eventRow) toDomain() domain.LetterEvent {
	return domain.LetterEvent{
		ID:         r.ID,
		LetterID:   r.LetterID,
		Action:     domain.LetterAction(r.Action),
		FromStatus: toStatus(r.FromStatus),
		ToStatus:   toStatus(r.ToStatus),
		Actor:      r.Actor,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func statusPtr(s *domain.LetterStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func toStatus(s *string) *domain.LetterStatus {
	if s == nil {
		return nil
	}
	v := domain.LetterStatus(*s)
	return &v
}
