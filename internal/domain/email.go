package domain

import (
	"net/mail"
	"strings"
	"time"
)

// EmailStatus is the outcome of a send attempt.
type EmailStatus string

const (
	EmailStatusSent  EmailStatus = "sent"
	EmailStatusError EmailStatus = "error"
)

func (s EmailStatus) IsValid() bool {
	return s == EmailStatusSent || s == EmailStatusError
}

// EmailLog is an append-only record of one send attempt.
type EmailLog struct {
	ID                int64
	LetterID          *int64
	RecipientEmail    string
	Subject           string
	Status            EmailStatus
	ErrorMessage      *string
	ProviderMessageID *string
	SentAt            time.Time
}

// EmailStatusStat counts attempts by outcome.
type EmailStatusStat struct {
	Status EmailStatus
	Count  int
}

// EmailDailyStat summarizes attempts for one day (YYYY-MM-DD).
type EmailDailyStat struct {
	Date       string
	Total      int
	Successful int
	Failed     int
}

// EmailStats aggregates send attempts.
type EmailStats struct {
	ByStatus []EmailStatusStat
	Daily    []EmailDailyStat
}

// ValidEmail reports whether s is a bare e-mail address.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == strings.TrimSpace(s)
}
