package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for solve requests.
const (
	OutcomeOK              = "ok"
	OutcomeNonFinite       = "non_finite"
	OutcomeDomainError     = "domain_error"
	OutcomeInvalidArgument = "invalid_argument"
)

// Metrics holds the collectors for a single node.
type Metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quadsolver",
			Name:      "solve_requests_total",
			Help:      "Solve requests by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quadsolver",
			Name:      "solve_duration_seconds",
			Help:      "Time spent handling solve requests.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}

	// Pre-create every outcome so they export as zero.
	for _, outcome := range []string{OutcomeOK, OutcomeNonFinite, OutcomeDomainError, OutcomeInvalidArgument} {
		m.requests.WithLabelValues(outcome)
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

// Observe records one request with the given outcome and start time.
func (m *Metrics) Observe(outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
	m.duration.Observe(time.Since(start).Seconds())
}

// Requests returns the counter for outcome.
func (m *Metrics) Requests(outcome string) prometheus.Counter {
	return m.requests.WithLabelValues(outcome)
}
