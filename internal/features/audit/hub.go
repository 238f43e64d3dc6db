package audit

import (
	"sync"

	"go-marketplace/internal/models"

	"go.uber.org/zap"
)

// Publisher receives audit entries from inside the write transaction that
// appended them, so entries arrive in audit-log order. Publish must not
// block or touch the store.
type Publisher interface {
	Publish(entries ...models.AuditLogEntry)
}

// Hub fans committed audit entries out to subscribers. Publish never
// blocks: a subscriber whose buffer is full misses the entry.
type Hub struct {
	mu     sync.RWMutex
	subs   map[chan models.AuditLogEntry]struct{}
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		subs:   make(map[chan models.AuditLogEntry]struct{}),
		logger: logger,
	}
}

func (h *Hub) Publish(entries ...models.AuditLogEntry) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		for _, e := range entries {
			select {
			case ch <- e.Clone():
			default:
				h.logger.Warn("audit subscriber is full, dropping entry",
					zap.String("audit_id", e.ID),
					zap.String("action", string(e.Action)))
			}
		}
	}
}

// Subscribe registers a buffered channel. The returned cancel func
// unregisters and closes it; it is safe to call more than once.
func (h *Hub) Subscribe(buffer int) (<-chan models.AuditLogEntry, func()) {
	ch := make(chan models.AuditLogEntry, buffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Subscribers reports the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
