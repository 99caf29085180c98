package request

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// Update merges the supplied fields into the request. An input with no
// fields fails with domain.ErrNothingToUpdate and performs no write.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Request, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := input.patch()
	if patch.IsEmpty() {
		return nil, domain.ErrNothingToUpdate
	}

	req, err := s.requests.Update(ctx, input.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}

	attrs := []any{slog.Int64("request_id", req.ID), slog.String("status", req.Status.String())}
	if patch.IsApproved != nil {
		attrs = append(attrs, slog.Bool("is_approved", *patch.IsApproved))
	}
	s.log.InfoContext(ctx, "request updated", attrs...)
	return req, nil
}

// Delete removes a request.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.requests.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	s.log.InfoContext(ctx, "request deleted", slog.Int64("request_id", id))
	return nil
}
