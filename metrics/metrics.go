// Package metrics counts the layout work done by data grids.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors of one or more grids. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Resolutions    prometheus.Counter
	OverSubscribed prometheus.Counter
	Invalidations  prometheus.Counter
	Degenerate     prometheus.Counter
	VisibleCells   prometheus.Gauge
	MeasuredCols   prometheus.Gauge
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Resolutions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datagrid_column_resolutions_total",
			Help: "Counter for column width resolutions.",
		}),
		OverSubscribed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datagrid_oversubscribed_total",
			Help: "Counter for resolutions whose explicit widths exceeded the available width.",
		}),
		Invalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datagrid_cache_invalidations_total",
			Help: "Counter for measurement cache invalidations.",
		}),
		Degenerate: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datagrid_degenerate_frames_total",
			Help: "Counter for frames withheld because the container had no area.",
		}),
		VisibleCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "datagrid_visible_cells",
			Help: "Gauge for the number of cells painted in the last frame.",
		}),
		MeasuredCols: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "datagrid_measured_columns",
			Help: "Gauge for the number of columns measured since the last invalidation.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.collectors()...)
	}
	return m
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.Resolutions,
		m.OverSubscribed,
		m.Invalidations,
		m.Degenerate,
		m.VisibleCells,
		m.MeasuredCols,
	}
}

// Resolved records a column resolution.
func (m *Metrics) Resolved(overSubscribed bool) {
	if m == nil {
		return
	}
	m.Resolutions.Inc()
	if overSubscribed {
		m.OverSubscribed.Inc()
	}
}

// Invalidated records a cache invalidation.
func (m *Metrics) Invalidated() {
	if m == nil {
		return
	}
	m.Invalidations.Inc()
}

// Withheld records a frame that was not painted.
func (m *Metrics) Withheld() {
	if m == nil {
		return
	}
	m.Degenerate.Inc()
}

// Painted records the size of a painted frame.
func (m *Metrics) Painted(cells, measured int) {
	if m == nil {
		return
	}
	m.VisibleCells.Set(float64(cells))
	m.MeasuredCols.Set(float64(measured))
}
