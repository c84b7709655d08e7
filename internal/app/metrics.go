package app

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dshills/gesture/internal/input/mouse"
)

// Metrics counts gestures and render timing. Counters are atomic so the
// status line and tests may read them from any goroutine.
type Metrics struct {
	presses  atomic.Uint64
	doubles  atomic.Uint64
	triples  atomic.Uint64
	drags    atomic.Uint64
	releases atomic.Uint64
	popups   atomic.Uint64
	reloads  atomic.Uint64

	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64
	renderMaxNs   atomic.Int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordMouse counts a decoded mouse event.
func (m *Metrics) RecordMouse(ev mouse.Event) {
	switch ev.Action {
	case mouse.ActionPress:
		m.presses.Add(1)
		switch ev.ClickCount {
		case 2:
			m.doubles.Add(1)
		case 3:
			m.triples.Add(1)
		}
	case mouse.ActionDrag:
		m.drags.Add(1)
	case mouse.ActionRelease:
		m.releases.Add(1)
	}
}

// RecordPopup counts a popup trigger.
func (m *Metrics) RecordPopup() {
	m.popups.Add(1)
}

// RecordReload counts a configuration reload.
func (m *Metrics) RecordReload() {
	m.reloads.Add(1)
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.renderCount.Add(1)
	m.renderTotalNs.Add(ns)

	for {
		old := m.renderMaxNs.Load()
		if ns <= old || m.renderMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	renders := m.renderCount.Load()
	var avg int64
	if renders > 0 {
		avg = m.renderTotalNs.Load() / int64(renders)
	}

	return MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		Presses:      m.presses.Load(),
		DoubleClicks: m.doubles.Load(),
		TripleClicks: m.triples.Load(),
		Drags:        m.drags.Load(),
		Releases:     m.releases.Load(),
		Popups:       m.popups.Load(),
		Reloads:      m.reloads.Load(),
		RenderCount:  renders,
		AvgRenderNs:  avg,
		MaxRenderNs:  m.renderMaxNs.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime       time.Duration
	Presses      uint64
	DoubleClicks uint64
	TripleClicks uint64
	Drags        uint64
	Releases     uint64
	Popups       uint64
	Reloads      uint64
	RenderCount  uint64
	AvgRenderNs  int64
	MaxRenderNs  int64
}

// AvgRender returns the mean render time.
func (s MetricsSnapshot) AvgRender() time.Duration {
	return time.Duration(s.AvgRenderNs)
}

// Summary is the one-line session report logged at shutdown.
func (s MetricsSnapshot) Summary() string {
	return fmt.Sprintf("%d presses (%d double, %d triple), %d drags, %d popups, %d reloads, %d renders averaging %v",
		s.Presses, s.DoubleClicks, s.TripleClicks, s.Drags, s.Popups, s.Reloads, s.RenderCount, s.AvgRender())
}
