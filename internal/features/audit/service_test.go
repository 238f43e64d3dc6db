package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"go-marketplace/internal/common/apperr"
	"go-marketplace/internal/config"
	"go-marketplace/internal/models"
	"go-marketplace/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seededStore(t *testing.T, n int) *store.Store {
	t.Helper()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s := store.New()
	err := s.Update(func(tx *store.Tx) error {
		for i := range n {
			user := "u1"
			if i%2 == 1 {
				user = "u2"
			}
			action := models.AuditActionInstall
			if i%3 == 0 {
				action = models.AuditActionConfig
			}
			tx.AppendAudit(models.AuditLogEntry{
				ID:          fmt.Sprintf("a%02d", i),
				Timestamp:   base.Add(time.Duration(i) * time.Minute),
				Action:      action,
				UserID:      user,
				ExtensionID: fmt.Sprintf("e%d", i%4),
			})
		}
		return nil
	})
	require.NoError(t, err)
	return s
}

func TestListLogs(t *testing.T) {
	svc := NewAuditService(seededStore(t, 120), nil)
	ctx := context.Background()

	logs, err := svc.ListLogs(ctx, LogFilter{})
	require.NoError(t, err)
	assert.Len(t, logs, defaultLimit)
	assert.Equal(t, "a119", logs[0].ID)
	for i := 1; i < len(logs); i++ {
		assert.True(t, logs[i-1].Timestamp.After(logs[i].Timestamp))
	}

	logs, err = svc.ListLogs(ctx, LogFilter{UserID: "u2", Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, logs, 60)

	logs, err = svc.ListLogs(ctx, LogFilter{UserID: "u1", ExtensionID: "e0", Action: models.AuditActionConfig, Limit: 5})
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	for _, e := range logs {
		assert.Equal(t, "u1", e.UserID)
		assert.Equal(t, "e0", e.ExtensionID)
		assert.Equal(t, models.AuditActionConfig, e.Action)
	}
}

func TestListLogsRoute(t *testing.T) {
	svc := NewAuditService(seededStore(t, 10), nil)
	ctrl := NewAuditController(svc, NewHub(zap.NewNop()), zap.NewNop())
	app := fiber.New(fiber.Config{ErrorHandler: apperr.ErrorHandler})
	NewAuditApi(ctrl, &config.Config{SkipAuth: true}).Setup(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/audit-logs?user_id=u1&limit=3", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var logs []models.AuditLogEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logs))
	assert.Len(t, logs, 3)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/ws/audit", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
