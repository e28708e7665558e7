package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asxpathway/pathway-api/internal/domain/entity"
	apphttp "github.com/asxpathway/pathway-api/internal/interfaces/http"
	pkgjwt "github.com/asxpathway/pathway-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "asx-pathway-test"
	testExpMin    = 60
)

func buildMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})
	return app
}

func doAuthed(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddlewareExtractsClaims(t *testing.T) {
	app := buildMiddlewareApp()

	tok, err := pkgjwt.Generate(testJWTSecret, demoUserID, demoUsername, entity.RoleFounder, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doAuthed(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, demoUserID, body["user_id"])
	assert.Equal(t, entity.RoleFounder, body["role"])
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	app := buildMiddlewareApp()

	resp := doAuthed(t, app, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareMalformedToken(t *testing.T) {
	app := buildMiddlewareApp()

	resp := doAuthed(t, app, "Bearer not.a.token")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app := buildMiddlewareApp()

	tok, err := pkgjwt.Generate(testJWTSecret, demoUserID, demoUsername, entity.RoleFounder, testIssuer, -1)
	require.NoError(t, err)

	resp := doAuthed(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	app := buildMiddlewareApp()

	tok, err := pkgjwt.Generate("a-completely-different-secret", demoUserID, demoUsername, entity.RoleFounder, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doAuthed(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginEndpointUnauthorized(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"username": demoUsername,
		"password": "wrong-password",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
