package email

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/heartmarshall/docflow-backend/internal/config"
)

const (
	sendGridHost     = "https://api.sendgrid.com"
	sendGridEndpoint = "/v3/mail/send"
)

type sendGridSender struct {
	apiKey  string
	host    string
	from    *mail.Email
	timeout time.Duration
}

func newSendGridSender(cfg config.EmailConfig) *sendGridSender {
	host := cfg.BaseURL
	if host == "" {
		host = sendGridHost
	}
	return &sendGridSender{
		apiKey:  cfg.APIKey,
		host:    strings.TrimRight(host, "/"),
		from:    mail.NewEmail(cfg.FromName, cfg.FromEmail),
		timeout: cfg.Timeout,
	}
}

func (s *sendGridSender) Provider() string { return config.EmailProviderSendGrid }

func (s *sendGridSender) Send(ctx context.Context, m Message) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	msg := mail.NewSingleEmail(s.from, m.Subject, mail.NewEmail("", m.To), m.Text, m.HTML)

	req := sendgrid.GetRequest(s.apiKey, sendGridEndpoint, s.host)
	req.Method = http.MethodPost
	req.Body = mail.GetRequestBody(msg)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, strings.TrimSpace(resp.Body))
	}

	for k, v := range resp.Headers {
		if strings.EqualFold(k, "X-Message-Id") && len(v) > 0 {
			return v[0], nil
		}
	}
	return "", nil
}
