package audit

import (
	"time"

	"go-marketplace/internal/models"
	"go-marketplace/pkg/utils"
)

// NewEntry builds an audit entry stamped with the current time.
func NewEntry(action models.AuditAction, userID, extensionID string, details models.ConfigMap) models.AuditLogEntry {
	if details == nil {
		details = models.ConfigMap{}
	}
	return models.AuditLogEntry{
		ID:          utils.NewID("audit"),
		Timestamp:   time.Now().UTC(),
		Action:      action,
		UserID:      userID,
		ExtensionID: extensionID,
		Details:     details,
	}
}
