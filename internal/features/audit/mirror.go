package audit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const mirrorBuffer = 1000

// Mirror copies every published audit entry into the repository in the
// background. It does nothing when the repository is disabled.
type Mirror struct {
	hub    *Hub
	repo   AuditRepository
	logger *zap.Logger

	cancel func()
	done   chan struct{}
}

func NewMirror(hub *Hub, repo AuditRepository, logger *zap.Logger) *Mirror {
	return &Mirror{hub: hub, repo: repo, logger: logger}
}

func (m *Mirror) Start() {
	if !m.repo.Enabled() {
		m.logger.Info("audit mirror disabled: no database configured")
		return
	}
	ch, cancel := m.hub.Subscribe(mirrorBuffer)
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		for entry := range ch {
			ctx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			if err := m.repo.Create(ctx, entry); err != nil {
				m.logger.Error("failed to mirror audit entry", zap.String("audit_id", entry.ID), zap.Error(err))
			}
			stop()
		}
	}()
}

// Stop unsubscribes and waits for in-flight writes to finish.
func (m *Mirror) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}
