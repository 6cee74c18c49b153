package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the tax-planning instruments exposed on /metrics.
type Metrics struct {
	computations      *prometheus.CounterVec
	computeDuration   prometheus.Histogram
	declarationSaves  *prometheus.CounterVec
	summaryBroadcasts prometheus.Counter
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_tax_computations_total",
			Help: "Tax liability computations by source and recommended regime.",
		}, []string{"source", "recommended"}),
		computeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hrms_tax_computation_duration_seconds",
			Help:    "Time spent computing a regime comparison.",
			Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
		}),
		declarationSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_tax_declaration_saves_total",
			Help: "Declaration upserts by outcome.",
		}, []string{"outcome"}),
		summaryBroadcasts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hrms_tax_summary_broadcasts_total",
			Help: "Tax summaries pushed to websocket subscribers.",
		}),
	}
	reg.MustRegister(m.computations, m.computeDuration, m.declarationSaves, m.summaryBroadcasts)
	return m
}

// ObserveComputation records one comparison. source is "stored" or "what_if".
func (m *Metrics) ObserveComputation(source, recommended string, took time.Duration) {
	if m == nil {
		return
	}
	m.computations.WithLabelValues(source, recommended).Inc()
	m.computeDuration.Observe(took.Seconds())
}

func (m *Metrics) DeclarationSaved(ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "error"
	}
	m.declarationSaves.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SummaryBroadcast() {
	if m == nil {
		return
	}
	m.summaryBroadcasts.Inc()
}
