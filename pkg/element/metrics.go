package element

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures registry metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "nsgo").
	Namespace string

	// Subsystem is the metrics subsystem (default: "element").
	Subsystem string

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Metrics holds the Prometheus collectors for a Registry. A nil *Metrics
// records nothing.
type Metrics struct {
	lookups        *prometheus.CounterVec
	resolveErrors  prometheus.Counter
	registered     prometheus.Gauge
	aliasOverrides prometheus.Counter
}

// NewMetrics creates and registers the registry collectors.
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "nsgo"
	}
	if config.Subsystem == "" {
		config.Subsystem = "element"
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "lookups_total",
			Help:      "Element lookups by operation and result",
		}, []string{"op", "result"}),

		resolveErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "resolve_errors_total",
			Help:      "Resolver invocations that failed",
		}),

		registered: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "registered",
			Help:      "Number of registered element names",
		}),

		aliasOverrides: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "alias_overrides_total",
			Help:      "Derived name keys that were reassigned to a later element",
		}),
	}
}

func (m *Metrics) lookup(op string, hit bool) {
	if m == nil {
		return
	}
	result := "hit"
	if !hit {
		result = "miss"
	}
	m.lookups.WithLabelValues(op, result).Inc()
}

func (m *Metrics) resolveError() {
	if m == nil {
		return
	}
	m.resolveErrors.Inc()
}

func (m *Metrics) setRegistered(n int) {
	if m == nil {
		return
	}
	m.registered.Set(float64(n))
}

func (m *Metrics) aliasOverride() {
	if m == nil {
		return
	}
	m.aliasOverrides.Inc()
}
