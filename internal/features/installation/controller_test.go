package installation

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"go-marketplace/internal/common/apperr"
	"go-marketplace/internal/config"
	"go-marketplace/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc, _, _ := newTestService(t)
	app := fiber.New(fiber.Config{ErrorHandler: apperr.ErrorHandler})
	NewInstallationApi(NewInstallationController(svc), &config.Config{SkipAuth: true}).Setup(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, target, userID, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", userID)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestInstallationRoutes(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, "POST", "/api/extensions/free/install", alice.ID, "")
	require.Equal(t, fiber.StatusCreated, status)
	var inst models.InstalledExtension
	require.NoError(t, json.Unmarshal(body, &inst))

	status, _ = do(t, app, "POST", "/api/extensions/free/install", alice.ID, "")
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = do(t, app, "POST", "/api/extensions/missing/install", alice.ID, "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body = do(t, app, "GET", "/api/installed", alice.ID, "")
	require.Equal(t, fiber.StatusOK, status)
	var views []InstalledView
	require.NoError(t, json.Unmarshal(body, &views))
	assert.Len(t, views, 2)

	status, _ = do(t, app, "PATCH", "/api/installed/inst-1/configuration", alice.ID, `{"theme":"light"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, "PATCH", "/api/installed/inst-1/configuration", alice.ID, `{"theme":{"nested":true}}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, "PATCH", "/api/installed/inst-1/configuration", alice.ID, `{"theme":"neon"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, "PATCH", "/api/installed/inst-1/enabled", alice.ID, `{"enabled":false}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, "DELETE", "/api/installed/"+inst.ID, bob.ID, "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, app, "DELETE", "/api/installed/"+inst.ID, alice.ID, "")
	assert.Equal(t, fiber.StatusNoContent, status)
}
