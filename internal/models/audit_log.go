package models

import "time"

type AuditAction string

const (
	AuditActionInstall   AuditAction = "INSTALL_EXTENSION"
	AuditActionUninstall AuditAction = "UNINSTALL_EXTENSION"
	AuditActionConfig    AuditAction = "UPDATE_CONFIG"
	AuditActionReview    AuditAction = "SUBMIT_REVIEW"
	AuditActionPublish   AuditAction = "PUBLISH_EXTENSION"
	AuditActionDelete    AuditAction = "DELETE_EXTENSION"
)

// ConfigChange holds full configuration snapshots around an update.
type ConfigChange struct {
	Old ConfigMap `json:"old" bson:"old"`
	New ConfigMap `json:"new" bson:"new"`
}

// AuditLogEntry is append-only; entries are never modified once recorded.
type AuditLogEntry struct {
	ID          string        `json:"id" bson:"_id"`
	Timestamp   time.Time     `json:"timestamp" bson:"timestamp"`
	Action      AuditAction   `json:"action" bson:"action"`
	UserID      string        `json:"user_id" bson:"user_id"`
	ExtensionID string        `json:"extension_id,omitempty" bson:"extension_id,omitempty"`
	Details     ConfigMap     `json:"details" bson:"details"`
	Config      *ConfigChange `json:"config,omitempty" bson:"config,omitempty"`
}

func (a AuditLogEntry) Clone() AuditLogEntry {
	c := a
	c.Details = a.Details.Clone()
	if a.Config != nil {
		c.Config = &ConfigChange{Old: a.Config.Old.Clone(), New: a.Config.New.Clone()}
	}
	return c
}
