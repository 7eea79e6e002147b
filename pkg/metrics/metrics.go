// Package metrics exposes Prometheus instruments for validation traffic.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics counts validation requests. A nil *Metrics records nothing.
type Metrics struct {
	Validations *prometheus.CounterVec
	Errors      *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// New registers the instruments on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "garagekit_validations_total",
			Help: "Validation requests by form or field kind and outcome",
		}, []string{"form", "outcome"}),

		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "garagekit_validation_errors_total",
			Help: "Individual validation failures reported, by form or field kind",
		}, []string{"form"}),

		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "garagekit_validation_duration_seconds",
			Help:    "Time spent validating one request body",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}, []string{"form"}),
	}
}

// ObserveResult records one completed validation with n failures.
func (m *Metrics) ObserveResult(form string, valid bool, n int, d time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeValid
	if !valid {
		outcome = OutcomeInvalid
	}
	m.Validations.WithLabelValues(form, outcome).Inc()
	if n > 0 {
		m.Errors.WithLabelValues(form).Add(float64(n))
	}
	m.Duration.WithLabelValues(form).Observe(d.Seconds())
}

// ObserveError records a request that could not be validated, e.g. a malformed body.
func (m *Metrics) ObserveError(form string) {
	if m == nil {
		return
	}
	m.Validations.WithLabelValues(form, OutcomeError).Inc()
}
