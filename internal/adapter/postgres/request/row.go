package request

import (
	"strings"
	"time"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

type requestRow struct {
	ID               int64     `db:"id"`
	TelegramUserID   string    `db:"telegram_user_id"`
	TelegramUsername *string   `db:"telegram_username"`
	UserName         string    `db:"user_name"`
	MessageText      string    `db:"message_text"`
	AudioFileURL     *string   `db:"audio_file_url"`
	TranscribedText  *string   `db:"transcribed_text"`
	Category         *string   `db:"category"`
	UrgencyLevel     int16     `db:"urgency_level"`
	ChangeType       *string   `db:"change_type"`
	DocSection       *string   `db:"doc_section"`
	AISummary        *string   `db:"ai_summary"`
	Status           string    `db:"status"`
	IsApproved       bool      `db:"is_approved"`
	AdminComment     *string   `db:"admin_comment"`
	LetterID         *int64    `db:"letter_id"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type statusStatRow struct {
	Status     string  `db:"status"`
	Count      int64   `db:"count"`
	AvgUrgency float64 `db:"avg_urgency"`
}

type categoryStatRow struct {
	Category *string `db:"category"`
	Count    int64   `db:"count"`
}

func (r requestRow) toDomain() domain.Request {
	return domain.Request{
		ID:               r.ID,
		TelegramUserID:   r.TelegramUserID,
		TelegramUsername: r.TelegramUsername,
		UserName:         r.UserName,
		MessageText:      r.MessageText,
		AudioFileURL:     r.AudioFileURL,
		TranscribedText:  r.TranscribedText,
		Category:         toEnum[domain.Category](r.Category),
		UrgencyLevel:     int(r.UrgencyLevel),
		ChangeType:       toEnum[domain.ChangeType](r.ChangeType),
		DocSection:       toEnum[domain.DocSection](r.DocSection),
		AISummary:        r.AISummary,
		Status:           domain.RequestStatus(r.Status),
		IsApproved:       r.IsApproved,
		AdminComment:     r.AdminComment,
		LetterID:         r.LetterID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toDomainRequests(rows []requestRow) []domain.Request {
	out := make([]domain.Request, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}

func toEnum[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

func enumPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
