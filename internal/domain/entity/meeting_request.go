package entity

import "time"

// Meeting types a user can request with an adviser.
const (
	MeetingIPOStrategy         = "ipo-strategy"
	MeetingComplianceReview    = "compliance-review"
	MeetingFinancialPlanning   = "financial-planning"
	MeetingMarketReadiness     = "market-readiness"
	MeetingGeneralConsultation = "general-consultation"
)

// MeetingTypes lists every valid meeting type.
var MeetingTypes = []string{
	MeetingIPOStrategy, MeetingComplianceReview, MeetingFinancialPlanning,
	MeetingMarketReadiness, MeetingGeneralConsultation,
}

// Meeting request statuses. Status is advanced by a back-office process;
// the API only ever creates requests as pending.
const (
	MeetingStatusPending   = "pending"
	MeetingStatusScheduled = "scheduled"
	MeetingStatusCompleted = "completed"
	MeetingStatusCancelled = "cancelled"
)

// MeetingRequest is a user-initiated request to book time with an adviser.
// PreferredDate is strictly in the future at creation time.
type MeetingRequest struct {
	ID            string
	UserID        string
	MeetingType   string
	PreferredDate time.Time
	Notes         string
	Status        string
	CreatedAt     time.Time
}
