package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/application/validation"
)

func violations(t *testing.T, err error) []validation.FieldError {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*validation.Error)
	require.True(t, ok, "expected *validation.Error, got %T", err)
	return verr.Violations
}

func strptr(s string) *string { return &s }

func TestUpdateTimelineRequest_EmptyPatchRejected(t *testing.T) {
	err := dto.UpdateTimelineRequest{}.Validate()
	vs := violations(t, err)
	require.Len(t, vs, 1)
	assert.Contains(t, vs[0].Message, "at least one")
}

func TestUpdateTimelineRequest_PastDateRejected(t *testing.T) {
	yesterday := time.Now().Add(-24 * time.Hour)
	err := dto.UpdateTimelineRequest{TargetListingDate: &yesterday}.Validate()
	vs := violations(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "targetListingDate", vs[0].Field)
}

func TestUpdateTimelineRequest_FutureDateAccepted(t *testing.T) {
	tomorrow := time.Now().Add(24 * time.Hour)
	assert.NoError(t, dto.UpdateTimelineRequest{TargetListingDate: &tomorrow}.Validate())
}

func TestUpdateTimelineRequest_InvalidStageRejected(t *testing.T) {
	err := dto.UpdateTimelineRequest{ListingStage: strptr("delisted")}.Validate()
	vs := violations(t, err)
	require.NotEmpty(t, vs)
	assert.Equal(t, "listingStage", vs[0].Field)
}

func TestUpdateTimelineRequest_StageOnlyAccepted(t *testing.T) {
	assert.NoError(t, dto.UpdateTimelineRequest{ListingStage: strptr("preparation")}.Validate())
}

func TestCreateMeetingRequest_PastDateRejected(t *testing.T) {
	err := dto.CreateMeetingRequest{
		UserID:        "u1",
		MeetingType:   "ipo-strategy",
		PreferredDate: time.Now().Add(-time.Hour),
	}.Validate()
	vs := violations(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "preferredDate", vs[0].Field)
	assert.Equal(t, "must be in the future", vs[0].Message)
}

func TestCreateMeetingRequest_FutureDateAccepted(t *testing.T) {
	err := dto.CreateMeetingRequest{
		UserID:        "u1",
		MeetingType:   "general-consultation",
		PreferredDate: time.Now().Add(24 * time.Hour),
	}.Validate()
	assert.NoError(t, err)
}

func TestCreateMeetingRequest_UnknownType(t *testing.T) {
	err := dto.CreateMeetingRequest{
		UserID:        "u1",
		MeetingType:   "golf",
		PreferredDate: time.Now().Add(24 * time.Hour),
	}.Validate()
	vs := violations(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "meetingType", vs[0].Field)
}

func TestCreateTaskRequest_MissingFields(t *testing.T) {
	err := dto.CreateTaskRequest{Priority: "urgent"}.Validate()
	vs := violations(t, err)
	fields := make([]string, 0, len(vs))
	for _, fe := range vs {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "description")
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "targetRole")
	assert.Contains(t, fields, "priority")
}

func TestCreateUserRequest_RoleEnum(t *testing.T) {
	req := dto.CreateUserRequest{Username: "founder_demo", Password: "demo123", Role: "cfo"}
	assert.NoError(t, req.Validate())

	req.Role = "intern"
	vs := violations(t, req.Validate())
	require.Len(t, vs, 1)
	assert.Equal(t, "role", vs[0].Field)
}
