package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asxpathway/pathway-api/internal/application/dto"
)

func TestSetProgressByIDAndListByUsername(t *testing.T) {
	app := newTestApp(t)

	// Write through the id form of the route.
	resp := doJSON(t, app, http.MethodPost,
		"/api/users/"+demoUserID+"/progress/"+demoTaskID,
		dto.SetProgressRequest{Completed: true})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rec := decodeBody[dto.ProgressResponse](t, resp)
	assert.True(t, rec.Completed)
	assert.NotNil(t, rec.CompletedAt)

	// Read through the username form; same records come back.
	listResp := doJSON(t, app, http.MethodGet, "/api/users/"+demoUsername+"/progress", nil)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	records := decodeBody[[]dto.ProgressResponse](t, listResp)
	require.Len(t, records, 1)
	assert.Equal(t, demoUserID, records[0].UserID)
	assert.Equal(t, demoTaskID, records[0].TaskID)
}

func TestSetProgressByUsername(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost,
		"/api/users/"+demoUsername+"/progress/"+demoTaskID,
		dto.SetProgressRequest{Completed: true})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rec := decodeBody[dto.ProgressResponse](t, resp)
	// The record is stored under the canonical user id, not the username.
	assert.Equal(t, demoUserID, rec.UserID)
}

func TestSetProgressUnknownUser(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost,
		"/api/users/ghost/progress/"+demoTaskID,
		dto.SetProgressRequest{Completed: true})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSetProgressUnknownTask(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost,
		"/api/users/"+demoUserID+"/progress/44444444-4444-4444-4444-444444444444",
		dto.SetProgressRequest{Completed: true})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListProgressEmptyForNewUser(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/users/"+demoUserID+"/progress", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	records := decodeBody[[]dto.ProgressResponse](t, resp)
	assert.Empty(t, records)
}
