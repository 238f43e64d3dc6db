package audit

import (
	"context"

	"go-marketplace/internal/latency"
	"go-marketplace/internal/models"
	"go-marketplace/internal/store"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// LogFilter narrows ListLogs. Empty fields match everything.
type LogFilter struct {
	UserID      string
	ExtensionID string
	Action      models.AuditAction
	Limit       int
}

type AuditService interface {
	ListLogs(ctx context.Context, filter LogFilter) ([]models.AuditLogEntry, error)
}

type AuditServiceImpl struct {
	Store   *store.Store
	Latency *latency.Simulator
}

func NewAuditService(s *store.Store, sim *latency.Simulator) AuditService {
	return &AuditServiceImpl{
		Store:   s,
		Latency: sim,
	}
}

// ListLogs returns matching entries, newest first.
func (s *AuditServiceImpl) ListLogs(ctx context.Context, filter LogFilter) ([]models.AuditLogEntry, error) {
	s.Latency.Wait(latency.AuditLogs)

	limit := filter.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	logs := make([]models.AuditLogEntry, 0, limit)
	err := s.Store.View(func(tx *store.Tx) error {
		tx.AuditLogs(func(e models.AuditLogEntry) bool {
			if filter.matches(e) {
				logs = append(logs, e.Clone())
			}
			return len(logs) < limit
		})
		return nil
	})
	return logs, err
}

func (f LogFilter) matches(e models.AuditLogEntry) bool {
	if f.UserID != "" && e.UserID != f.UserID {
		return false
	}
	if f.ExtensionID != "" && e.ExtensionID != f.ExtensionID {
		return false
	}
	if f.Action != "" && e.Action != f.Action {
		return false
	}
	return true
}
