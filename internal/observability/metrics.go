package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Configure outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the Prometheus metrics for the configuration pipeline.
type Metrics struct {
	configuresTotal   *prometheus.CounterVec
	configureDuration *prometheus.HistogramVec
	activeConfig      *prometheus.GaugeVec
	registeredDeps    *prometheus.GaugeVec
	registry          *prometheus.Registry
}

// NewMetrics creates a new Metrics instance registered on a private
// Prometheus registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "fragway"
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.configuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "configures_total",
			Help:      "Total number of configure calls",
		},
		[]string{"kind", "outcome"},
	)

	m.configureDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "configure_duration_seconds",
			Help:      "Duration of configure calls in seconds",
			Buckets: []float64{
				.0001, .0005, .001, .005, .01, .05, .1, .5, 1,
			},
		},
		[]string{"kind"},
	)

	m.activeConfig = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_configuration_info",
			Help:      "Active configuration revision (value is always 1)",
		},
		[]string{"kind", "name", "revision"},
	)

	m.registeredDeps = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registered_dependencies",
			Help:      "Number of dependencies registered per kind",
		},
		[]string{"kind"},
	)

	m.registry.MustRegister(
		m.configuresTotal,
		m.configureDuration,
		m.activeConfig,
		m.registeredDeps,
	)

	return m
}

// ObserveConfigure records one configure call.
func (m *Metrics) ObserveConfigure(kind, outcome string, seconds float64) {
	m.configuresTotal.WithLabelValues(kind, outcome).Inc()
	if outcome == OutcomeSuccess {
		m.configureDuration.WithLabelValues(kind).Observe(seconds)
	}
}

// SetActiveConfiguration records the currently active configuration
// revision, replacing any previously recorded one.
func (m *Metrics) SetActiveConfiguration(kind, name, revision string) {
	m.activeConfig.Reset()
	m.activeConfig.WithLabelValues(kind, name, revision).Set(1)
}

// SetRegisteredDependencies records the registry population for a
// dependency kind.
func (m *Metrics) SetRegisteredDependencies(kind string, count int) {
	m.registeredDeps.WithLabelValues(kind).Set(float64(count))
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
