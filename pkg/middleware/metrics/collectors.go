package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "response_time",
			Help:    "http response time.",
			Buckets: []float64{0.005, 0.05, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"route"},
	)

	totalHttpRequestsToUri = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests_to_uri", Help: "http requests to uri"},
		[]string{"code", "uri", "method"},
	)

	totalHttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests", Help: "http requests by code, and method"},
		[]string{"code", "method"},
	)

	endpointResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "endpoint_responses_total", Help: "endpoint results by endpoint and kind (text, json, error)"},
		[]string{"endpoint", "kind"},
	)
)

func init() {
	prometheus.MustRegister(
		responseTime,
		totalHttpRequestsToUri,
		totalHttpRequests,
		endpointResponses,
	)
}

// ObserveEndpoint counts one endpoint result of the given kind.
func ObserveEndpoint(endpoint, kind string) {
	endpointResponses.WithLabelValues(endpoint, kind).Inc()
}
