package rest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flog_client",
			Name:      "requests_total",
			Help:      "REST requests issued, by method.",
		},
		[]string{"method"},
	)

	retriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flog_client",
			Name:      "request_retries_total",
			Help:      "Attempts repeated after a transient failure.",
		},
	)

	failuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flog_client",
			Name:      "request_failures_total",
			Help:      "Requests that failed after exhausting retries.",
		},
	)

	uploadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flog_client",
			Name:      "uploads_total",
			Help:      "Raw-bytes object uploads issued.",
		},
	)
)
