package audit

import (
	"strconv"

	"go-marketplace/internal/models"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const streamBuffer = 64

type AuditController struct {
	Service AuditService
	Hub     *Hub
	Logger  *zap.Logger
}

func NewAuditController(service AuditService, hub *Hub, logger *zap.Logger) *AuditController {
	return &AuditController{Service: service, Hub: hub, Logger: logger}
}

type queryGetter func(key string, defaultValue ...string) string

func parseFilter(query queryGetter) LogFilter {
	limit, _ := strconv.Atoi(query("limit", "0"))
	return LogFilter{
		UserID:      query("user_id"),
		ExtensionID: query("extension_id"),
		Action:      models.AuditAction(query("action")),
		Limit:       limit,
	}
}

// ListLogs godoc
// @Summary List audit logs
// @Description List audit log entries, newest first
// @Tags audit
// @Produce json
// @Param user_id query string false "Filter by user"
// @Param extension_id query string false "Filter by extension"
// @Param action query string false "Filter by action"
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {array} models.AuditLogEntry
// @Router /api/audit-logs [get]
func (ctrl *AuditController) ListLogs(c *fiber.Ctx) error {
	logs, err := ctrl.Service.ListLogs(c.UserContext(), parseFilter(c.Query))
	if err != nil {
		return err
	}
	return c.JSON(logs)
}

// StreamLogs pushes audit entries committed after the connection opened.
// The same query filters as ListLogs apply; limit is ignored.
func (ctrl *AuditController) StreamLogs(conn *websocket.Conn) {
	filter := parseFilter(conn.Query)
	entries, cancel := ctrl.Hub.Subscribe(streamBuffer)
	defer cancel()

	// The client never sends anything; reading detects the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case entry, ok := <-entries:
			if !ok {
				return
			}
			if !filter.matches(entry) {
				continue
			}
			if err := conn.WriteJSON(entry); err != nil {
				ctrl.Logger.Debug("audit stream write failed", zap.Error(err))
				return
			}
		}
	}
}
