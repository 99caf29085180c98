// Package email delivers transactional e-mail through SendGrid or Resend.
package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heartmarshall/docflow-backend/internal/config"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

// Message is one outgoing e-mail.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a message and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, m Message) (string, error)
	Provider() string
}

// New builds the sender selected by cfg.ResolvedProvider.
// Returns domain.ErrNotConfigured when the key or sender address is missing.
func New(cfg config.EmailConfig) (Sender, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("email sender: %w", domain.ErrNotConfigured)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch p := cfg.ResolvedProvider(); p {
	case config.EmailProviderSendGrid:
		return newSendGridSender(cfg), nil
	case config.EmailProviderResend:
		return newResendSender(cfg, httpClient)
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", p)
	}
}

func fromAddress(cfg config.EmailConfig) string {
	if cfg.FromName == "" {
		return cfg.FromEmail
	}
	return fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
}
