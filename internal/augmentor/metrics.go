package augmentor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Backend kinds, also the accepted AUGMENTOR_BACKEND values.
const (
	BackendRemote   = "remote"
	BackendSnippets = "snippets"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "augmentor_requests_total",
			Help: "Total number of retrieval augmentor calls",
		},
		[]string{"backend", "result"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "augmentor_request_duration_seconds",
			Help:    "Retrieval augmentor call duration distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend"},
	)
)

// RecordCall records one augmentor call for backend.
func RecordCall(backend string, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	requestsTotal.WithLabelValues(backend, result).Inc()
	requestDuration.WithLabelValues(backend).Observe(duration.Seconds())
}
