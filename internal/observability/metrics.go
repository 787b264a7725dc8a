package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for weather lookups.
type Metrics struct {
	Lookups *prometheus.CounterVec // labels: detail={none,partial,full}, outcome={success,error}

	// Provider call metrics.
	ProviderRequests *prometheus.CounterVec // labels: outcome={success,error}
	ProviderDuration prometheus.Histogram

	HistoryWrites *prometheus.CounterVec // labels: outcome={success,error}
}

// NewMetrics creates and registers all lookup metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherapp",
			Name:      "lookups_total",
			Help:      "Weather lookups by detail level and outcome.",
		}, []string{"detail", "outcome"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherapp",
			Name:      "provider_requests_total",
			Help:      "Requests to the weather provider by outcome.",
		}, []string{"outcome"}),
		ProviderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weatherapp",
			Name:      "provider_request_duration_seconds",
			Help:      "Weather provider request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		HistoryWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherapp",
			Name:      "history_writes_total",
			Help:      "Search-history inserts by outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.Lookups,
		m.ProviderRequests,
		m.ProviderDuration,
		m.HistoryWrites,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Lookups:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weatherapp", Name: "lookups_total"}, []string{"detail", "outcome"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weatherapp", Name: "provider_requests_total"}, []string{"outcome"}),
		ProviderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weatherapp", Name: "provider_request_duration_seconds"}),
		HistoryWrites:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weatherapp", Name: "history_writes_total"}, []string{"outcome"}),
	}
}
