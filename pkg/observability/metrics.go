// Package observability provides Prometheus metrics and structured
// logging hooks for the Slack client. Metrics are recorded by wrapping
// the transport; log entries come from lifecycle listeners and a
// transport wrapper.
package observability

import "github.com/prometheus/client_golang/prometheus"

// WebAPIBuckets defines histogram buckets suited for Web API call
// latencies, ranging from 50ms to 30s.
var WebAPIBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

var (
	// CallsTotal counts API exchanges by wire method and outcome. The
	// outcome is a status class ("2xx", "5xx") or "error" for failures
	// that never produced a status.
	CallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slack_client_calls_total",
			Help: "API calls",
		},
		[]string{"method", "outcome"},
	)

	// CallDuration records exchange duration in seconds by wire method.
	CallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "slack_client_call_duration_seconds",
			Help:    "API call duration",
			Buckets: WebAPIBuckets,
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(
		CallsTotal,
		CallDuration,
	)
}
