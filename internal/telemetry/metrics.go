// Package telemetry registers the Prometheus metrics for the dashboard
// service.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the dashboard service.
type Metrics struct {
	FetchDur      *prometheus.HistogramVec // labels: source
	FetchErrors   *prometheus.CounterVec   // labels: source
	RequestsTotal *prometheus.CounterVec   // labels: endpoint
	PipelineRuns  prometheus.Counter
	PipelineWarns prometheus.Counter
}

// NewMetrics registers and returns all dashboard metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		FetchDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stockboard_fetch_duration_seconds",
			Help:    "Market data provider fetch latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),
		FetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockboard_fetch_errors_total",
			Help: "Failed or empty provider fetches",
		}, []string{"source"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockboard_http_requests_total",
			Help: "Dashboard HTTP requests served",
		}, []string{"endpoint"}),
		PipelineRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockboard_pipeline_runs_total",
			Help: "Dashboard pipeline invocations",
		}),
		PipelineWarns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockboard_pipeline_warnings_total",
			Help: "Non-fatal stage failures surfaced as warnings",
		}),
	}
	prometheus.MustRegister(
		m.FetchDur, m.FetchErrors, m.RequestsTotal,
		m.PipelineRuns, m.PipelineWarns,
	)
	return m
}

// ObserveFetch records one provider fetch. Safe on a nil receiver so tests
// can run the pipeline without a registry.
func (m *Metrics) ObserveFetch(source string, dur time.Duration, err error) {
	if m == nil {
		return
	}
	m.FetchDur.WithLabelValues(source).Observe(dur.Seconds())
	if err != nil {
		m.FetchErrors.WithLabelValues(source).Inc()
	}
}

// CountRequest records one served HTTP request.
func (m *Metrics) CountRequest(endpoint string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(endpoint).Inc()
}

// CountRun records one pipeline invocation and its warning count.
func (m *Metrics) CountRun(warnings int) {
	if m == nil {
		return
	}
	m.PipelineRuns.Inc()
	m.PipelineWarns.Add(float64(warnings))
}
