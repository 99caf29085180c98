package mailer

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const maxSubjectLen = 500

// SendLetterInput holds the parameters for e-mailing a signed letter.
type SendLetterInput struct {
	LetterID       int64
	RecipientEmail string
	Subject        *string
}

// Validate checks all fields and collects all errors.
func (i SendLetterInput) Validate() error {
	var errs []domain.FieldError
	if i.LetterID <= 0 {
		errs = append(errs, domain.FieldError{Field: "letterId", Message: "required"})
	}
	errs = appendRecipientErrors(errs, i.RecipientEmail)
	errs = appendSubjectErrors(errs, i.Subject)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SendTestInput holds the parameters for a test message.
type SendTestInput struct {
	RecipientEmail string
	Subject        *string
	Content        *string
}

// Validate checks all fields and collects all errors.
func (i SendTestInput) Validate() error {
	var errs []domain.FieldError
	errs = appendRecipientErrors(errs, i.RecipientEmail)
	errs = appendSubjectErrors(errs, i.Subject)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LogsInput holds the parameters for listing send attempts.
type LogsInput struct {
	Status *string
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i LogsInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !domain.EmailStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be sent or error"})
	}
	if i.Limit < 0 || i.Limit > MaxLogLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendRecipientErrors(errs []domain.FieldError, recipient string) []domain.FieldError {
	switch {
	case strings.TrimSpace(recipient) == "":
		return append(errs, domain.FieldError{Field: "recipientEmail", Message: "required"})
	case !domain.ValidEmail(recipient):
		return append(errs, domain.FieldError{Field: "recipientEmail", Message: "invalid email"})
	}
	return errs
}

func appendSubjectErrors(errs []domain.FieldError, subject *string) []domain.FieldError {
	if subject != nil && utf8.RuneCountInString(*subject) > maxSubjectLen {
		return append(errs, domain.FieldError{Field: "subject", Message: "max 500 characters"})
	}
	return errs
}

// subjectOr returns the trimmed subject, or fallback when absent or blank.
func subjectOr(subject *string, fallback string) string {
	if subject != nil && strings.TrimSpace(*subject) != "" {
		return strings.TrimSpace(*subject)
	}
	return fallback
}
