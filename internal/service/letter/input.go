package letter

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

const (
	maxTitleLen   = 300
	maxCommentLen = 2000
)

// ListInput holds the parameters for listing letters.
type ListInput struct {
	Status *string
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !domain.LetterStatus(*i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
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

// CombineInput holds the parameters for combining requests into a letter.
type CombineInput struct {
	RequestIDs []int64
	Title      *string
}

// Validate checks all fields and collects all errors.
func (i CombineInput) Validate() error {
	var errs []domain.FieldError
	if len(i.RequestIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "request_ids", Message: "required"})
	}
	for _, id := range i.RequestIDs {
		if id <= 0 {
			errs = append(errs, domain.FieldError{Field: "request_ids", Message: "ids must be positive"})
			break
		}
	}
	if i.Title != nil && utf8.RuneCountInString(*i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the supplied fields of a partial letter update.
type UpdateInput struct {
	ID             int64
	Title          *string
	Content        *string
	ManagerComment *string
	RecipientEmail *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		t := strings.TrimSpace(*i.Title)
		if t == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		}
		if utf8.RuneCountInString(t) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
		}
	}
	if i.ManagerComment != nil && utf8.RuneCountInString(*i.ManagerComment) > maxCommentLen {
		errs = append(errs, domain.FieldError{Field: "manager_comment", Message: "max 2000 characters"})
	}
	if i.RecipientEmail != nil && *i.RecipientEmail != "" && !domain.ValidEmail(*i.RecipientEmail) {
		errs = append(errs, domain.FieldError{Field: "recipient_email", Message: "invalid email"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) patch() domain.LetterPatch {
	p := domain.LetterPatch{
		Content:        i.Content,
		ManagerComment: i.ManagerComment,
		RecipientEmail: i.RecipientEmail,
	}
	if i.Title != nil {
		t := strings.TrimSpace(*i.Title)
		p.Title = &t
	}
	return p
}

// SignInput holds the parameters for signing a letter.
type SignInput struct {
	ID      int64
	Comment *string
}

// RejectInput holds the parameters for rejecting a letter.
type RejectInput struct {
	ID     int64
	Reason *string
}
