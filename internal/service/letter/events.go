package letter

import (
	"context"
	"fmt"

	"github.com/heartmarshall/docflow-backend/internal/domain"
	"github.com/heartmarshall/docflow-backend/pkg/ctxutil"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// record appends an audit event in the caller's transaction.
func (s *Service) record(ctx context.Context, letterID int64, action domain.LetterAction, from, to domain.LetterStatus, comment *string) error {
	e := domain.LetterEvent{LetterID: letterID, Action: action, Comment: comment}
	if from != "" {
		e.FromStatus = &from
	}
	if to != "" {
		e.ToStatus = &to
	}
	if actor := ctxutil.ActorIDOrEmpty(ctx); actor != "" {
		e.Actor = &actor
	}
	if err := s.events.Log(ctx, e); err != nil {
		return fmt.Errorf("record %s event: %w", action, err)
	}
	return nil
}

// History returns the audit trail of a letter, newest first. A deleted
// letter keeps its history.
func (s *Service) History(ctx context.Context, id int64, limit int) ([]domain.LetterEvent, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	events, err := s.events.ListByLetter(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("letter history: %w", err)
	}
	if len(events) == 0 {
		if _, err := s.letters.GetByID(ctx, id); err != nil {
			return nil, fmt.Errorf("letter history: %w", err)
		}
	}
	return events, nil
}
