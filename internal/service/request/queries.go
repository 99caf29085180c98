package request

import (
	"context"
	"fmt"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// Get returns a single request.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Request, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	return req, nil
}

// List returns requests matching the input, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Request, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.RequestFilter{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if input.Status != nil {
		st := domain.RequestStatus(*input.Status)
		f.Status = &st
	}
	if input.Category != nil {
		c := domain.Category(*input.Category)
		f.Category = &c
	}

	items, err := s.requests.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return items, nil
}

// Stats returns the per-status and per-category overview.
func (s *Service) Stats(ctx context.Context) (domain.RequestStats, error) {
	st, err := s.requests.Stats(ctx)
	if err != nil {
		return domain.RequestStats{}, fmt.Errorf("request stats: %w", err)
	}
	return st, nil
}
