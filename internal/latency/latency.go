// Package latency adds the artificial response delays of the demo
// marketplace. Delays carry no timeout or retry meaning and cannot be
// cancelled.
package latency

import "time"

// Per-operation delays.
const (
	Search        = 300 * time.Millisecond
	Details       = 200 * time.Millisecond
	Reviews       = 200 * time.Millisecond
	SubmitReview  = 400 * time.Millisecond
	ListInstalled = 300 * time.Millisecond
	Install       = 500 * time.Millisecond
	Uninstall     = 500 * time.Millisecond
	Configure     = 400 * time.Millisecond
	ListDeveloper = 300 * time.Millisecond
	Publish       = 700 * time.Millisecond
	Delete        = 500 * time.Millisecond
	Analytics     = 300 * time.Millisecond
	AuditLogs     = 200 * time.Millisecond
)

// Simulator sleeps when enabled. The nil Simulator never sleeps.
type Simulator struct {
	enabled bool
	sleep   func(time.Duration)
}

func New(enabled bool) *Simulator {
	return &Simulator{enabled: enabled, sleep: time.Sleep}
}

// Wait blocks for d when the simulator is enabled.
func (s *Simulator) Wait(d time.Duration) {
	if s == nil || !s.enabled {
		return
	}
	s.sleep(d)
}
