package mailer

import (
	"context"
	"fmt"
	"html"
	"html/template"
	"log/slog"

	"github.com/heartmarshall/docflow-backend/internal/adapter/provider/email"
	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const defaultTestSubject = "Test message - Request management system"

// SendResult describes a delivered message.
type SendResult struct {
	MessageID string
	Recipient string
	Subject   string
	Provider  string
}

// SendLetter e-mails a signed letter. Every attempt is logged. On success the
// letter moves to sent and its requests to completed.
func (s *Service) SendLetter(ctx context.Context, input SendLetterInput) (*SendResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.sender == nil {
		return nil, fmt.Errorf("send letter: %w", domain.ErrNotConfigured)
	}

	l, err := s.letters.GetByID(ctx, input.LetterID)
	if err != nil {
		return nil, fmt.Errorf("send letter: %w", err)
	}
	if l.Status != domain.LetterStatusSigned {
		return nil, domain.NewConflictError("letter", l.ID, "only signed letters can be sent")
	}

	subject := subjectOr(input.Subject, l.Title)
	date := s.now()
	if l.SignedAt != nil {
		date = *l.SignedAt
	}

	body, err := renderLetter(letterView{
		Title:     l.Title,
		Date:      date,
		Content:   template.HTML(l.Content),
		Signature: defaultSignature,
	})
	if err != nil {
		return nil, err
	}

	msgID, sendErr := s.sender.Send(ctx, email.Message{To: input.RecipientEmail, Subject: subject, HTML: body})
	s.record(ctx, &l.ID, input.RecipientEmail, subject, msgID, sendErr)
	if sendErr != nil {
		return nil, fmt.Errorf("send letter %d: %w: %w", l.ID, domain.ErrUpstream, sendErr)
	}

	if _, err := s.marker.MarkSent(ctx, l.ID, input.RecipientEmail); err != nil {
		return nil, fmt.Errorf("send letter: %w", err)
	}

	s.log.InfoContext(ctx, "letter e-mailed",
		slog.Int64("letter_id", l.ID),
		slog.String("provider", s.sender.Provider()),
		slog.String("message_id", msgID),
	)
	return &SendResult{MessageID: msgID, Recipient: input.RecipientEmail, Subject: subject, Provider: s.sender.Provider()}, nil
}

// SendTest sends a fixed (or supplied) test message and logs the outcome.
func (s *Service) SendTest(ctx context.Context, input SendTestInput) (*SendResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.sender == nil {
		return nil, fmt.Errorf("send test: %w", domain.ErrNotConfigured)
	}

	subject := subjectOr(input.Subject, defaultTestSubject)
	now := s.now()

	content := template.HTML(fmt.Sprintf(
		"<h2>Test message</h2>"+
			"<p>This is a test message from the documentation change request system.</p>"+
			"<p>If you received it, e-mail delivery works.</p>"+
			"<p>Sent at: %s</p>", html.EscapeString(now.Format("02.01.2006 15:04:05"))))
	if input.Content != nil && *input.Content != "" {
		content = template.HTML(*input.Content)
	}

	body, err := renderLetter(letterView{Title: subject, Heading: subject, Date: now, Content: content})
	if err != nil {
		return nil, err
	}

	msgID, sendErr := s.sender.Send(ctx, email.Message{To: input.RecipientEmail, Subject: subject, HTML: body})
	s.record(ctx, nil, input.RecipientEmail, subject, msgID, sendErr)
	if sendErr != nil {
		return nil, fmt.Errorf("send test: %w: %w", domain.ErrUpstream, sendErr)
	}

	return &SendResult{MessageID: msgID, Recipient: input.RecipientEmail, Subject: subject, Provider: s.sender.Provider()}, nil
}

// record appends a send attempt to the log. A failed write is logged only.
func (s *Service) record(ctx context.Context, letterID *int64, recipient, subject, msgID string, sendErr error) {
	entry := domain.EmailLog{
		LetterID:       letterID,
		RecipientEmail: recipient,
		Subject:        subject,
		Status:         domain.EmailStatusSent,
	}
	if sendErr != nil {
		msg := sendErr.Error()
		entry.Status = domain.EmailStatusError
		entry.ErrorMessage = &msg
	} else if msgID != "" {
		entry.ProviderMessageID = &msgID
	}

	if _, err := s.logs.Create(ctx, entry); err != nil {
		s.log.ErrorContext(ctx, "write email log",
			slog.String("recipient", recipient),
			slog.String("error", err.Error()))
	}
	if sendErr != nil {
		s.log.WarnContext(ctx, "e-mail delivery failed",
			slog.String("recipient", recipient),
			slog.String("error", sendErr.Error()))
	}
}
