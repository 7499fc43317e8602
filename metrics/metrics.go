// Package metrics exposes the tracker's Prometheus instrumentation:
// support-vector population, budget evictions, and the SVM dual
// objective, so an operator can watch the learner converge in
// production the same way they'd watch any other online model.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the counters and gauges the tracker updates once per
// frame. Callers register it with a prometheus.Registerer of their
// choosing (cmd/struck creates its own registry; tests can use a
// throwaway one).
type Metrics struct {
	SupportVectors  prometheus.Gauge
	SupportPatterns prometheus.Gauge
	DualObjective   prometheus.Gauge
	Evictions       prometheus.Counter
	IllConditioned  prometheus.Gauge
	FramesTracked   prometheus.Counter
}

// New creates and registers a Metrics set on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SupportVectors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "struck",
			Name:      "support_vectors",
			Help:      "Current number of live support vectors in the learner.",
		}),
		SupportPatterns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "struck",
			Name:      "support_patterns",
			Help:      "Current number of live support patterns in the learner.",
		}),
		DualObjective: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "struck",
			Name:      "dual_objective",
			Help:      "Current value of the SVM dual objective.",
		}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "struck",
			Name:      "budget_evictions_total",
			Help:      "Total number of support vectors evicted by budget maintenance.",
		}),
		IllConditioned: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "struck",
			Name:      "smo_ill_conditioned_total",
			Help:      "Cumulative number of SMO steps whose kappa denominator was clamped.",
		}),
		FramesTracked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "struck",
			Name:      "frames_tracked_total",
			Help:      "Total number of frames processed by the tracker.",
		}),
	}

	reg.MustRegister(
		m.SupportVectors,
		m.SupportPatterns,
		m.DualObjective,
		m.Evictions,
		m.IllConditioned,
		m.FramesTracked,
	)

	return m
}

// Sample reflects a learner.Debug snapshot into the gauges. debug is
// passed as plain fields to avoid metrics depending on the learner
// package. Evictions is not set here: it is a prometheus.Counter
// (monotonic), so the caller subtracts its previous cumulative eviction
// count and passes the difference to RecordEvictions.
func (m *Metrics) Sample(patterns, vectors int, dual float64, illConditioned int) {
	m.SupportPatterns.Set(float64(patterns))
	m.SupportVectors.Set(float64(vectors))
	m.DualObjective.Set(dual)
	m.IllConditioned.Set(float64(illConditioned))
}

// RecordEvictions adds the number of evictions observed since the last
// call to the cumulative Evictions counter.
func (m *Metrics) RecordEvictions(delta int) {
	if delta > 0 {
		m.Evictions.Add(float64(delta))
	}
}
