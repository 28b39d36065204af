// SPDX-License-Identifier: MIT

package tvmaze

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvmaze_client_request_total",
			Help: "Total number of TVMaze HTTP request attempts",
		},
		[]string{"endpoint", "status_class"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tvmaze_client_request_duration_seconds",
			Help:    "Duration of TVMaze HTTP requests per attempt",
			Buckets: prometheus.ExponentialBuckets(0.05, 2.0, 8),
		},
		[]string{"endpoint", "status_class"},
	)
	requestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvmaze_client_request_errors_total",
			Help: "Number of TVMaze request attempts that failed",
		},
		[]string{"endpoint", "status_class"},
	)
	requestRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvmaze_client_request_retries_total",
			Help: "Number of TVMaze request retries performed",
		},
		[]string{"endpoint", "status_class"},
	)
)

func statusClass(err error, status int) string {
	if err != nil {
		return "error"
	}
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	case status > 0:
		return "1xx"
	}
	return "unknown"
}

func recordAttemptMetrics(endpoint string, status int, duration time.Duration, err error, retry bool) {
	class := statusClass(err, status)
	requestTotal.WithLabelValues(endpoint, class).Inc()
	requestDuration.WithLabelValues(endpoint, class).Observe(duration.Seconds())
	if class != "2xx" {
		requestErrors.WithLabelValues(endpoint, class).Inc()
	}
	if retry {
		requestRetries.WithLabelValues(endpoint, class).Inc()
	}
}
