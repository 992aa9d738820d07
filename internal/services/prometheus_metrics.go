package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	storeMutations      *prometheus.CounterVec
	persistenceFailures *prometheus.CounterVec
	transactionCount    prometheus.Gauge
	statisticsDuration  *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the collectors on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		storeMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_store_mutations_total",
				Help: "Total number of store mutations by operation",
			},
			[]string{"operation"},
		),
		persistenceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_persistence_failures_total",
				Help: "Total number of swallowed persistence failures by operation",
			},
			[]string{"operation"},
		),
		transactionCount: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "transactions_stored",
				Help: "Current number of transactions in the store",
			},
		),
		statisticsDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "statistics_request_duration_milliseconds",
				Help:    "Statistics computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
			},
			[]string{"view"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case MetricStoreMutation:
		m.storeMutations.WithLabelValues(operation).Inc()
	case MetricPersistenceFailure:
		m.persistenceFailures.WithLabelValues(operation).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if view, ok := strings.CutPrefix(name, MetricStatisticsRequest+"."); ok {
		m.statisticsDuration.WithLabelValues(view).Observe(float64(duration.Microseconds()) / 1000)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricTransactionCount:
		m.transactionCount.Set(value)
	}
}

// noopMetrics discards everything
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
