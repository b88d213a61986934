// Package obs provides the engine's Prometheus instrumentation and
// diagnostic reporting.
package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every metric the engine exports.
type Metrics struct {
	NodesInterned   prometheus.Counter
	LiveNodes       prometheus.Gauge
	TurnInvocations prometheus.Counter
	TurnDuration    prometheus.Histogram
	ReclaimRuns     prometheus.Counter
	ReclaimedNodes  prometheus.Counter
}

// NewMetrics registers and returns a fresh metrics set against the default
// Prometheus registry. Callers that run multiple engines in one process
// should pass a distinct registerer via NewMetricsFor to avoid duplicate
// registration panics.
func NewMetrics() *Metrics {
	return NewMetricsFor(prometheus.DefaultRegisterer)
}

// NewMetricsFor registers the engine's metrics against reg.
func NewMetricsFor(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		NodesInterned: factory.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_nodes_interned_total",
			Help: "Total nodes constructed and registered in the interner.",
		}),
		LiveNodes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hashlife_live_nodes",
			Help: "Nodes currently reachable/registered in the interner.",
		}),
		TurnInvocations: factory.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_turn_invocations_total",
			Help: "Total top-level Run calls recorded; recursive turn steps are not counted.",
		}),
		TurnDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name: "hashlife_turn_duration_seconds",
			Help: "Wall-clock duration of a top-level Run call.",
		}),
		ReclaimRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_reclaim_runs_total",
			Help: "Total reachability-based reclamation passes triggered by memory pressure.",
		}),
		ReclaimedNodes: factory.NewCounter(prometheus.CounterOpts{
			Name: "hashlife_reclaimed_nodes_total",
			Help: "Total nodes freed across all reclamation passes.",
		}),
	}
}

// ObserveTurn records the duration of one Run invocation.
func (m *Metrics) ObserveTurn(d time.Duration) {
	if m == nil {
		return
	}
	m.TurnInvocations.Inc()
	m.TurnDuration.Observe(d.Seconds())
}
