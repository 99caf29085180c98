package intake

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// SetWebhook registers the bot webhook. An empty url falls back to the
// configured one.
func (s *Service) SetWebhook(ctx context.Context, url string) (string, error) {
	if s.bot == nil {
		return "", domain.ErrNotConfigured
	}
	desc, err := s.bot.SetWebhook(ctx, url)
	if err != nil {
		return "", fmt.Errorf("set webhook: %w: %w", domain.ErrUpstream, err)
	}
	s.log.InfoContext(ctx, "webhook registered", slog.String("result", desc))
	return desc, nil
}

// WebhookInfo reports the current webhook registration.
func (s *Service) WebhookInfo(ctx context.Context) (domain.WebhookInfo, error) {
	if s.bot == nil {
		return domain.WebhookInfo{}, domain.ErrNotConfigured
	}
	info, err := s.bot.WebhookInfo(ctx)
	if err != nil {
		return domain.WebhookInfo{}, fmt.Errorf("webhook info: %w: %w", domain.ErrUpstream, err)
	}
	return info, nil
}
