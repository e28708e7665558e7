package dto

import (
	"time"

	"github.com/asxpathway/pathway-api/internal/application/validation"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
)

// CreateMeetingRequest input for booking adviser time. Status cannot be set
// by the caller; new requests are always pending.
type CreateMeetingRequest struct {
	UserID        string    `json:"userId"`
	MeetingType   string    `json:"meetingType"`
	PreferredDate time.Time `json:"preferredDate"`
	Notes         string    `json:"notes"`
}

// Validate checks required fields, the meeting-type enum and that the
// preferred date is strictly in the future.
func (r CreateMeetingRequest) Validate() error {
	var v validation.Error
	v.Required("userId", r.UserID)
	v.Required("meetingType", r.MeetingType)
	v.OneOf("meetingType", r.MeetingType, entity.MeetingTypes)
	if r.PreferredDate.IsZero() {
		v.Add("preferredDate", "is required")
	} else {
		v.Future("preferredDate", r.PreferredDate)
	}
	return v.Err()
}

// MeetingRequestResponse meeting request output.
type MeetingRequestResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	MeetingType   string    `json:"meetingType"`
	PreferredDate time.Time `json:"preferredDate"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
