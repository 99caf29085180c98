package email

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/heartmarshall/docflow-backend/internal/config"
)

type resendSender struct {
	client *resend.Client
	from   string
}

func newResendSender(cfg config.EmailConfig, httpClient *http.Client) (*resendSender, error) {
	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	if cfg.BaseURL != "" {
		u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse resend base url: %w", err)
		}
		client.BaseURL = u
	}
	return &resendSender{client: client, from: fromAddress(cfg)}, nil
}

func (s *resendSender) Provider() string { return config.EmailProviderResend }

func (s *resendSender) Send(ctx context.Context, m Message) (string, error) {
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{m.To},
		Subject: m.Subject,
		Html:    m.HTML,
		Text:    m.Text,
	})
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}
	return sent.Id, nil
}
