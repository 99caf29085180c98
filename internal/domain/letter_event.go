package domain

import "time"

// LetterAction names a change recorded in a letter's history.
type LetterAction string

const (
	LetterActionCreated   LetterAction = "created"
	LetterActionUpdated   LetterAction = "updated"
	LetterActionSubmitted LetterAction = "submitted"
	LetterActionSigned    LetterAction = "signed"
	LetterActionRejected  LetterAction = "rejected"
	LetterActionSent      LetterAction = "sent"
	LetterActionDeleted   LetterAction = "deleted"
)

func (a LetterAction) IsValid() bool {
	switch a {
	case LetterActionCreated, LetterActionUpdated, LetterActionSubmitted, LetterActionSigned,
		LetterActionRejected, LetterActionSent, LetterActionDeleted:
		return true
	}
	return false
}

// LetterEvent is one append-only entry of a letter's audit trail.
// Actor is the Telegram user id of the authenticated caller, if any.
type LetterEvent struct {
	ID         int64
	LetterID   int64
	Action     LetterAction
	FromStatus *LetterStatus
	ToStatus   *LetterStatus
	Actor      *string
	Comment    *string
	CreatedAt  time.Time
}
