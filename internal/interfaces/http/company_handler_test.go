package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asxpathway/pathway-api/internal/application/dto"
	"github.com/asxpathway/pathway-api/internal/domain/timeline"
)

func TestUpdateTimelineStage(t *testing.T) {
	app := newTestApp(t)

	next := timeline.StagePreparation
	resp := doJSON(t, app, http.MethodPatch, "/api/companies/"+demoCompany+"/timeline",
		dto.UpdateTimelineRequest{ListingStage: &next})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.CompanyResponse](t, resp)
	assert.Equal(t, timeline.StagePreparation, out.ListingStage)
}

func TestUpdateTimelineFutureDate(t *testing.T) {
	app := newTestApp(t)

	future := time.Now().Add(60 * 24 * time.Hour).UTC().Truncate(time.Second)
	resp := doJSON(t, app, http.MethodPatch, "/api/companies/"+demoCompany+"/timeline",
		dto.UpdateTimelineRequest{TargetListingDate: &future})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody[dto.CompanyResponse](t, resp)
	require.NotNil(t, out.TargetListingDate)
	assert.True(t, out.TargetListingDate.Equal(future))
}

func TestUpdateTimelineEmptyPatch(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPatch, "/api/companies/"+demoCompany+"/timeline",
		dto.UpdateTimelineRequest{})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.NotEmpty(t, out.Details)
}

func TestUpdateTimelinePastDate(t *testing.T) {
	app := newTestApp(t)

	past := time.Now().Add(-24 * time.Hour)
	resp := doJSON(t, app, http.MethodPatch, "/api/companies/"+demoCompany+"/timeline",
		dto.UpdateTimelineRequest{TargetListingDate: &past})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateTimelineUnknownCompany(t *testing.T) {
	app := newTestApp(t)

	next := timeline.StageListed
	resp := doJSON(t, app, http.MethodPatch,
		"/api/companies/99999999-9999-9999-9999-999999999999/timeline",
		dto.UpdateTimelineRequest{ListingStage: &next})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
