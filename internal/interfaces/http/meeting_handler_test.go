package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain/entity"
)

func TestCreateMeetingRequestFutureDate(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/meeting-requests", dto.CreateMeetingRequest{
		UserID:        demoUserID,
		MeetingType:   entity.MeetingIPOStrategy,
		PreferredDate: time.Now().Add(72 * time.Hour),
		Notes:         "Pre-IPO strategy session",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decodeBody[dto.MeetingRequestResponse](t, resp)
	assert.Equal(t, entity.MeetingStatusPending, out.Status)
	assert.Equal(t, demoUserID, out.UserID)
}

func TestCreateMeetingRequestPastDate(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/meeting-requests", dto.CreateMeetingRequest{
		UserID:        demoUserID,
		MeetingType:   entity.MeetingIPOStrategy,
		PreferredDate: time.Now().Add(-time.Hour),
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	require.NotEmpty(t, out.Details)
	assert.Equal(t, "preferredDate", out.Details[0].Field)
}

func TestCreateMeetingRequestUnknownMeetingType(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/meeting-requests", dto.CreateMeetingRequest{
		UserID:        demoUserID,
		MeetingType:   "coffee-chat",
		PreferredDate: time.Now().Add(72 * time.Hour),
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateMeetingRequestUnknownUser(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/meeting-requests", dto.CreateMeetingRequest{
		UserID:        "99999999-9999-9999-9999-999999999999",
		MeetingType:   entity.MeetingComplianceReview,
		PreferredDate: time.Now().Add(72 * time.Hour),
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListMeetingRequestsFilterByUser(t *testing.T) {
	app := newTestApp(t)

	create := doJSON(t, app, http.MethodPost, "/api/meeting-requests", dto.CreateMeetingRequest{
		UserID:        demoUserID,
		MeetingType:   entity.MeetingFinancialPlanning,
		PreferredDate: time.Now().Add(48 * time.Hour),
	})
	create.Body.Close()
	require.Equal(t, http.StatusCreated, create.StatusCode)

	resp := doJSON(t, app, http.MethodGet, "/api/meeting-requests?userId="+demoUserID, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeBody[[]dto.MeetingRequestResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, entity.MeetingFinancialPlanning, list[0].MeetingType)
}
