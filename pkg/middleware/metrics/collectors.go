package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	dispatchSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dispatch_response_seconds",
			Help:    "dispatch latency.",
			Buckets: []float64{0.005, 0.05, 0.5, 1, 5, 10, 30},
		},
	)

	dispatchRequestsByURI = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dispatch_requests_by_uri_total", Help: "dispatched requests by code, uri and method"},
		[]string{"code", "uri", "method"},
	)

	dispatchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dispatch_requests_total", Help: "dispatched requests by code and method"},
		[]string{"code", "method"},
	)
)

func init() {
	prometheus.MustRegister(
		dispatchSeconds,
		dispatchRequestsByURI,
		dispatchRequests,
	)
}
