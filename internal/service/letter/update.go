package letter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// Update edits title, content, comment or recipient while the letter is a
// draft or pending approval. Status changes go through the transitions.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Letter, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := input.patch()
	if patch.IsEmpty() {
		return nil, domain.ErrNothingToUpdate
	}

	var updated *domain.Letter
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.letters.GetForUpdate(ctx, input.ID)
		if err != nil {
			return err
		}
		if !l.Status.Editable() {
			return domain.NewConflictError("letter", l.ID, fmt.Sprintf("letter is %s and can no longer be edited", l.Status))
		}

		if updated, err = s.letters.Update(ctx, input.ID, patch); err != nil {
			return err
		}
		return s.record(ctx, l.ID, domain.LetterActionUpdated, l.Status, updated.Status, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("update letter: %w", err)
	}

	s.log.InfoContext(ctx, "letter updated", slog.Int64("letter_id", updated.ID))
	return updated, nil
}
