// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DispatchRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_runs_total",
			Help: "Total number of dispatch runs by entry point",
		},
		[]string{"dispatch"},
	)

	DispatchRunErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_run_errors_total",
			Help: "Total number of dispatch runs aborted by a fetch error",
		},
		[]string{"dispatch"},
	)

	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Total number of emails accepted by the provider",
		},
		[]string{"notification_type"},
	)

	EmailsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_failed_total",
			Help: "Total number of emails rejected by the provider or failed in-flight",
		},
		[]string{"notification_type"},
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dispatch_duration_seconds",
			Help: "Duration of one dispatch batch in seconds",
		},
		[]string{"dispatch"},
	)
)
