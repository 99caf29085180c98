package letter

import (
	"context"
	"fmt"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// List returns letters, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Letter, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.LetterFilter{Limit: input.Limit, Offset: input.Offset}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if input.Status != nil {
		st := domain.LetterStatus(*input.Status)
		f.Status = &st
	}

	letters, err := s.letters.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}
	return letters, nil
}

// Get returns a letter together with the requests it references.
func (s *Service) Get(ctx context.Context, id int64) (*domain.LetterWithRequests, error) {
	l, err := s.letters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get letter: %w", err)
	}

	reqs := []domain.Request{}
	if len(l.RequestIDs) > 0 {
		reqs, err = s.requests.ListByIDs(ctx, l.RequestIDs)
		if err != nil {
			return nil, fmt.Errorf("get letter requests: %w", err)
		}
	}
	return &domain.LetterWithRequests{Letter: *l, Requests: reqs}, nil
}

// Stats returns per-status and per-month letter counts.
func (s *Service) Stats(ctx context.Context) (domain.LetterStats, error) {
	st, err := s.letters.Stats(ctx)
	if err != nil {
		return domain.LetterStats{}, fmt.Errorf("letter stats: %w", err)
	}
	return st, nil
}
