package developer

import (
	"net/http/httptest"
	"strings"
	"testing"

	"go-marketplace/internal/common/apperr"
	"go-marketplace/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeveloperRoutes(t *testing.T) {
	svc, _ := newTestService(t, ownedDataset())
	app := fiber.New(fiber.Config{ErrorHandler: apperr.ErrorHandler})
	NewDeveloperApi(NewDeveloperController(svc), &config.Config{SkipAuth: true}).Setup(app)

	tests := []struct {
		name       string
		method     string
		target     string
		role       string
		body       string
		wantStatus int
		wantType   string
	}{
		{"standard user is rejected", "GET", "/api/developer/extensions", "standard_user", "", fiber.StatusForbidden, ""},
		{"list", "GET", "/api/developer/extensions", "developer", "", fiber.StatusOK, "application/json"},
		{"publish", "POST", "/api/developer/extensions", "developer", `{"name":"New","price":1}`, fiber.StatusCreated, "application/json"},
		{"publish invalid", "POST", "/api/developer/extensions", "developer", `{"name":""}`, fiber.StatusBadRequest, ""},
		{"analytics", "GET", "/api/developer/extensions/mine/analytics", "developer", "", fiber.StatusOK, "application/json"},
		{"analytics of another developer", "GET", "/api/developer/extensions/theirs/analytics", "developer", "", fiber.StatusNotFound, ""},
		{"export", "GET", "/api/developer/extensions/mine/analytics/export", "developer", "", fiber.StatusOK, xlsxContentType},
		{"delete other", "DELETE", "/api/developer/extensions/theirs", "admin", "", fiber.StatusNotFound, ""},
		{"delete", "DELETE", "/api/developer/extensions/mine", "developer", "", fiber.StatusNoContent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-User-Id", dev1.ID)
			req.Header.Set("X-User-Role", tt.role)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantType != "" {
				assert.Contains(t, resp.Header.Get("Content-Type"), tt.wantType)
			}
		})
	}
}
