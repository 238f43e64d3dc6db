package extension

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"go-marketplace/internal/common/apperr"
	"go-marketplace/internal/config"
	"go-marketplace/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc, _ := newTestService(t, store.NewGenerator(4, fixedNow).Generate(10))
	app := fiber.New(fiber.Config{ErrorHandler: apperr.ErrorHandler})
	NewExtensionApi(NewExtensionController(svc), &config.Config{SkipAuth: true}).Setup(app)
	return app
}

func TestExtensionRoutes(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"search", "GET", "/api/extensions?limit=3&sort_by=name", "", fiber.StatusOK},
		{"search with junk criteria", "GET", "/api/extensions?page=abc&min_rating=x&price=weird", "", fiber.StatusOK},
		{"categories", "GET", "/api/categories", "", fiber.StatusOK},
		{"details", "GET", "/api/extensions/ext-vscode", "", fiber.StatusOK},
		{"details missing", "GET", "/api/extensions/missing", "", fiber.StatusNotFound},
		{"reviews missing", "GET", "/api/extensions/missing/reviews", "", fiber.StatusNotFound},
		{"review", "POST", "/api/extensions/ext-vscode/reviews", `{"rating":5,"comment":"great"}`, fiber.StatusCreated},
		{"review invalid rating", "POST", "/api/extensions/ext-vscode/reviews", `{"rating":9,"comment":"great"}`, fiber.StatusBadRequest},
		{"review bad body", "POST", "/api/extensions/ext-vscode/reviews", `{`, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestSearchRouteBody(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/extensions?limit=5&page=2", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var result SearchResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 12, result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 3, result.TotalPages)
	assert.Len(t, result.Extensions, 5)
}
