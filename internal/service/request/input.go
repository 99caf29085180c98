package request

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const (
	maxMessageLen = 10000
	maxCommentLen = 2000
)

// CreateInput holds the parameters for creating a request.
type CreateInput struct {
	TelegramUserID   string
	TelegramUsername *string
	UserName         string
	MessageText      string
	AudioFileURL     *string
	TranscribedText  *string
	Category         *string
	UrgencyLevel     *int
	ChangeType       *string
	DocSection       *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.TelegramUserID) == "" {
		errs = append(errs, domain.FieldError{Field: "telegram_user_id", Message: "required"})
	}
	if strings.TrimSpace(i.UserName) == "" {
		errs = append(errs, domain.FieldError{Field: "user_name", Message: "required"})
	}

	text := strings.TrimSpace(i.MessageText)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "message_text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > maxMessageLen {
		errs = append(errs, domain.FieldError{Field: "message_text", Message: "max 10000 characters"})
	}

	if i.TranscribedText != nil && utf8.RuneCountInString(*i.TranscribedText) > maxMessageLen {
		errs = append(errs, domain.FieldError{Field: "transcribed_text", Message: "max 10000 characters"})
	}
	if i.Category != nil && !domain.Category(*i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	if i.UrgencyLevel != nil && !domain.ValidUrgency(*i.UrgencyLevel) {
		errs = append(errs, domain.FieldError{Field: "urgency_level", Message: "must be between 1 and 3"})
	}
	if i.ChangeType != nil && !domain.ChangeType(*i.ChangeType).IsValid() {
		errs = append(errs, domain.FieldError{Field: "change_type", Message: "invalid value"})
	}
	if i.DocSection != nil && !domain.DocSection(*i.DocSection).IsValid() {
		errs = append(errs, domain.FieldError{Field: "doc_section", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing requests.
type ListInput struct {
	Status   *string
	Category *string
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !domain.RequestStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Category != nil && !domain.Category(*i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the supplied fields of a partial update.
type UpdateInput struct {
	ID           int64
	Status       *string
	IsApproved   *bool
	AdminComment *string
	Category     *string
	UrgencyLevel *int
	ChangeType   *string
	DocSection   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Status != nil && !domain.RequestStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Category != nil && !domain.Category(*i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	if i.ChangeType != nil && !domain.ChangeType(*i.ChangeType).IsValid() {
		errs = append(errs, domain.FieldError{Field: "change_type", Message: "invalid value"})
	}
	if i.DocSection != nil && !domain.DocSection(*i.DocSection).IsValid() {
		errs = append(errs, domain.FieldError{Field: "doc_section", Message: "invalid value"})
	}
	if i.UrgencyLevel != nil && !domain.ValidUrgency(*i.UrgencyLevel) {
		errs = append(errs, domain.FieldError{Field: "urgency_level", Message: "must be between 1 and 3"})
	}
	if i.AdminComment != nil && utf8.RuneCountInString(*i.AdminComment) > maxCommentLen {
		errs = append(errs, domain.FieldError{Field: "admin_comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) patch() domain.RequestPatch {
	p := domain.RequestPatch{
		IsApproved:   i.IsApproved,
		AdminComment: i.AdminComment,
		UrgencyLevel: i.UrgencyLevel,
	}
	if i.Status != nil {
		s := domain.RequestStatus(*i.Status)
		p.Status = &s
	}
	if i.Category != nil {
		c := domain.Category(*i.Category)
		p.Category = &c
	}
	if i.ChangeType != nil {
		c := domain.ChangeType(*i.ChangeType)
		p.ChangeType = &c
	}
	if i.DocSection != nil {
		d := domain.DocSection(*i.DocSection)
		p.DocSection = &d
	}
	return p
}
