// control/monitor.go
// Author: momentics <momentics@gmail.com>
//
// Ring-aware glue over the probe and metrics registries: tracked rings
// expose their operation counters through named probes, and Collect
// folds every probe into a consistent metrics snapshot.

package control

import (
	"time"

	"github.com/momentics/ringio/api"
)

// Monitor tracks instrumented rings and exports their counters.
type Monitor struct {
	probes  *DebugProbes
	metrics *MetricsRegistry
}

// NewMonitor creates a monitor with empty registries.
func NewMonitor() *Monitor {
	return &Monitor{
		probes:  NewDebugProbes(),
		metrics: NewMetricsRegistry(),
	}
}

// Track registers a ring under name; its counters appear in every
// subsequent Collect.
func (m *Monitor) Track(name string, r api.Instrumented) {
	m.probes.RegisterProbe(name, func() any { return r.Stats() })
}

// Probe registers an arbitrary debug hook alongside tracked rings.
func (m *Monitor) Probe(name string, fn func() any) {
	m.probes.RegisterProbe(name, fn)
}

// Collect snapshots every probe into the metrics registry and returns
// the combined view.
func (m *Monitor) Collect() map[string]any {
	for k, v := range m.probes.DumpState() {
		m.metrics.Set(k, v)
	}
	return m.metrics.GetSnapshot()
}

// LastCollected reports when Collect last folded probe output.
func (m *Monitor) LastCollected() time.Time {
	return m.metrics.LastUpdated()
}
