package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation requests",
	})

	// Items returned per response, including alternatives
	RecommendResultSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_result_size",
		Help:    "Number of items returned per recommendation response",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 10},
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		RecommendResultSize,
	)
}
