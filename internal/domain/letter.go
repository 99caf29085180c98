package domain

import "time"

// LetterStatus is the approval state of a composite letter.
type LetterStatus string

const (
	LetterStatusDraft           LetterStatus = "draft"
	LetterStatusPendingApproval LetterStatus = "pending_approval"
	LetterStatusSigned          LetterStatus = "signed"
	LetterStatusSent            LetterStatus = "sent"
)

func (s LetterStatus) String() string { return string(s) }

func (s LetterStatus) IsValid() bool {
	switch s {
	case LetterStatusDraft, LetterStatusPendingApproval, LetterStatusSigned, LetterStatusSent:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is defined.
func (s LetterStatus) IsTerminal() bool {
	return s == LetterStatusSent
}

// Editable reports whether title/content may still change.
func (s LetterStatus) Editable() bool {
	return s == LetterStatusDraft || s == LetterStatusPendingApproval
}

// DefaultLetterTitle is used when combine is called without a title.
const DefaultLetterTitle = "Changes to project documentation"

// DefaultRejectReason is recorded when a manager rejects without a reason.
const DefaultRejectReason = "Rejected by manager"

// Letter bundles approved requests for manager sign-off and delivery.
type Letter struct {
	ID             int64
	Title          string
	Content        string
	RequestIDs     []int64
	Status         LetterStatus
	ManagerComment *string
	SignedAt       *time.Time
	SentAt         *time.Time
	RecipientEmail *string
	CreatedBy      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LetterWithRequests is a letter together with the requests it references.
type LetterWithRequests struct {
	Letter
	Requests []Request
}

// LetterFilter narrows a letter listing.
type LetterFilter struct {
	Status *LetterStatus
	Limit  int
	Offset int
}

// LetterPatch holds the supplied fields of a partial letter update.
type LetterPatch struct {
	Title          *string
	Content        *string
	ManagerComment *string
	RecipientEmail *string
}

// IsEmpty reports whether no field was supplied.
func (p LetterPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.ManagerComment == nil && p.RecipientEmail == nil
}

// LetterStatusStat is one row of the per-status overview.
type LetterStatusStat struct {
	Status LetterStatus
	Count  int
}

// LetterMonthStat counts letters created in a calendar month (YYYY-MM).
type LetterMonthStat struct {
	Month string
	Count int
}

// LetterStats aggregates letter counts.
type LetterStats struct {
	ByStatus []LetterStatusStat
	ByMonth  []LetterMonthStat
}

// LetterTransition describes a guarded status change: it applies only while
// the letter is in one of From.
type LetterTransition struct {
	From           []LetterStatus
	To             LetterStatus
	ManagerComment *string
	SignedAt       *time.Time
	ClearSignedAt  bool
	SentAt         *time.Time
	RecipientEmail *string
}

// Letter priorities reported by composition.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// LetterDraft is a composed letter body before it is stored.
type LetterDraft struct {
	Title        string
	Content      string
	Sections     []string
	Priority     string
	UsedFallback bool
}
