package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bfhl"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the Prometheus collectors for classification traffic.
type Metrics struct {
	tokens          *prometheus.CounterVec
	classifications *prometheus.CounterVec
	duration        *prometheus.HistogramVec
}

var (
	defaultOnce sync.Once
	shared      *Metrics
)

// Default returns the instance registered with the global Prometheus registry.
// Collectors are created once so repeated construction never double-registers.
func Default() *Metrics {
	defaultOnce.Do(func() {
		shared = MustNew(prometheus.DefaultRegisterer)
	})
	return shared
}

// MustNew registers a fresh set of collectors with reg and panics on conflict.
func MustNew(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	tokens := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_total",
			Help:      "Classified tokens by bucket.",
		},
		[]string{"bucket"},
	)

	classifications := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Classification requests by backend and outcome.",
		},
		[]string{"backend", "outcome"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classification_duration_seconds",
			Help:      "Time spent classifying a payload.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"backend"},
	)

	reg.MustRegister(tokens, classifications, duration)

	return &Metrics{
		tokens:          tokens,
		classifications: classifications,
		duration:        duration,
	}
}

func (m *Metrics) ObserveTokens(numbers, alphabets int) {
	if m == nil {
		return
	}
	m.tokens.WithLabelValues("numbers").Add(float64(numbers))
	m.tokens.WithLabelValues("alphabets").Add(float64(alphabets))
}

func (m *Metrics) ObserveClassification(backend string, took time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.classifications.WithLabelValues(backend, outcome).Inc()
	m.duration.WithLabelValues(backend).Observe(took.Seconds())
}
