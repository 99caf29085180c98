package letter

import (
	"errors"
	"time"

	"github.com/heartmarshall/docflow-backend/internal/domain"
)

type letterRow struct {
	ID             int64      `db:"id"`
	Title          string     `db:"title"`
	Content        string     `db:"content"`
	RequestIDs     []int64    `db:"request_ids"`
	Status         string     `db:"status"`
	ManagerComment *string    `db:"manager_comment"`
	SignedAt       *time.Time `db:"signed_at"`
	SentAt         *time.Time `db:"sent_at"`
	RecipientEmail *string    `db:"recipient_email"`
	CreatedBy      *string    `db:"created_by"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

type statusStatRow struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

type monthStatRow struct {
	Month string `db:"month"`
	Count int64  `db:"count"`
}

func (r letterRow) toDomain() domain.Letter {
	ids := r.RequestIDs
	if ids == nil {
		ids = []int64{}
	}
	return domain.Letter{
		ID:             r.ID,
		Title:          r.Title,
		Content:        r.Content,
		RequestIDs:     ids,
		Status:         domain.LetterStatus(r.Status),
		ManagerComment: r.ManagerComment,
		SignedAt:       r.SignedAt,
		SentAt:         r.SentAt,
		RecipientEmail: r.RecipientEmail,
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
