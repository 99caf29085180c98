package domain

import "time"

// RequestStatus is the lifecycle state of a change request.
type RequestStatus string

const (
	RequestStatusNew         RequestStatus = "new"
	RequestStatusUnderReview RequestStatus = "under_review"
	RequestStatusApproved    RequestStatus = "approved"
	RequestStatusRejected    RequestStatus = "rejected"
	RequestStatusInProgress  RequestStatus = "in_progress"
	RequestStatusCompleted   RequestStatus = "completed"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusNew, RequestStatusUnderReview, RequestStatusApproved,
		RequestStatusRejected, RequestStatusInProgress, RequestStatusCompleted:
		return true
	}
	return false
}

// Category is the AI-assigned kind of change.
type Category string

const (
	CategoryTechnicalError        Category = "technical_error"
	CategoryDocumentationAddition Category = "documentation_addition"
	CategoryRegulatoryChange      Category = "regulatory_change"
	CategoryEconomicJustification Category = "economic_justification"
	CategoryOther                 Category = "other"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryTechnicalError, CategoryDocumentationAddition, CategoryRegulatoryChange,
		CategoryEconomicJustification, CategoryOther:
		return true
	}
	return false
}

// ChangeType describes what kind of edit the request asks for.
type ChangeType string

const (
	ChangeTypeErrorFix   ChangeType = "error_fix"
	ChangeTypeAddition   ChangeType = "addition"
	ChangeTypeCorrection ChangeType = "correction"
	ChangeTypeNewSection ChangeType = "new_section"
	ChangeTypeOther      ChangeType = "other"
)

func (c ChangeType) String() string { return string(c) }

func (c ChangeType) IsValid() bool {
	switch c {
	case ChangeTypeErrorFix, ChangeTypeAddition, ChangeTypeCorrection, ChangeTypeNewSection, ChangeTypeOther:
		return true
	}
	return false
}

// DocSection is the project documentation section a request targets.
type DocSection string

const (
	DocSectionFoundations     DocSection = "foundations"
	DocSectionWalls           DocSection = "walls"
	DocSectionRoof            DocSection = "roof"
	DocSectionPowerSupply     DocSection = "power_supply"
	DocSectionWaterSupply     DocSection = "water_supply"
	DocSectionHeating         DocSection = "heating"
	DocSectionExplanatoryNote DocSection = "explanatory_note"
	DocSectionOther           DocSection = "other"
)

func (d DocSection) String() string { return string(d) }

func (d DocSection) IsValid() bool {
	switch d {
	case DocSectionFoundations, DocSectionWalls, DocSectionRoof, DocSectionPowerSupply,
		DocSectionWaterSupply, DocSectionHeating, DocSectionExplanatoryNote, DocSectionOther:
		return true
	}
	return false
}

var docSectionLabels = map[DocSection]string{
	DocSectionFoundations:     "Foundations",
	DocSectionWalls:           "Walls",
	DocSectionRoof:            "Roof",
	DocSectionPowerSupply:     "Power supply",
	DocSectionWaterSupply:     "Water supply",
	DocSectionHeating:         "Heating",
	DocSectionExplanatoryNote: "Explanatory note",
	DocSectionOther:           "Other",
}

// Label returns the human-readable section name.
func (d DocSection) Label() string {
	if l, ok := docSectionLabels[d]; ok {
		return l
	}
	return docSectionLabels[DocSectionOther]
}

// Urgency levels: 1 is urgent, 3 is low.
const (
	UrgencyUrgent  = 1
	UrgencyNormal  = 2
	UrgencyLow     = 3
	DefaultUrgency = UrgencyNormal
)

// ValidUrgency reports whether u is within 1..3.
func ValidUrgency(u int) bool {
	return u >= UrgencyUrgent && u <= UrgencyLow
}

// VoicePlaceholder is stored as message text until a voice message is transcribed.
const VoicePlaceholder = "[Voice message]"

// Request is a single submitted change item.
type Request struct {
	ID               int64
	TelegramUserID   string
	TelegramUsername *string
	UserName         string
	MessageText      string
	AudioFileURL     *string
	TranscribedText  *string
	Category         *Category
	UrgencyLevel     int
	ChangeType       *ChangeType
	DocSection       *DocSection
	AISummary        *string
	Status           RequestStatus
	IsApproved       bool
	AdminComment     *string
	LetterID         *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SectionOrOther returns the document section, or "other" when unclassified.
func (r Request) SectionOrOther() DocSection {
	if r.DocSection == nil || *r.DocSection == "" {
		return DocSectionOther
	}
	return *r.DocSection
}

// Classification is the advisory output of the text classifier.
type Classification struct {
	Category   Category
	Urgency    int
	ChangeType ChangeType
	DocSection DocSection
	Summary    string
}

// RequestFilter narrows a request listing.
type RequestFilter struct {
	Status   *RequestStatus
	Category *Category
	Limit    int
	Offset   int
}

// RequestPatch holds the supplied fields of a partial request update.
type RequestPatch struct {
	Status       *RequestStatus
	IsApproved   *bool
	AdminComment *string
	Category     *Category
	UrgencyLevel *int
	ChangeType   *ChangeType
	DocSection   *DocSection
}

// IsEmpty reports whether no field was supplied.
func (p RequestPatch) IsEmpty() bool {
	return p.Status == nil && p.IsApproved == nil && p.AdminComment == nil &&
		p.Category == nil && p.UrgencyLevel == nil && p.ChangeType == nil && p.DocSection == nil
}

// RequestStatusStat is one row of the per-status overview.
type RequestStatusStat struct {
	Status     RequestStatus
	Count      int
	AvgUrgency float64
}

// RequestCategoryStat is one row of the per-category overview.
type RequestCategoryStat struct {
	Category *Category
	Count    int
}

// RequestStats aggregates request counts.
type RequestStats struct {
	ByStatus   []RequestStatusStat
	ByCategory []RequestCategoryStat
}
