package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal counts handled requests by route, method and status code.
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "trivia_http_requests_total",
		Help: "Total number of HTTP requests handled",
	},
	[]string{"path", "method", "status"},
)

// HTTPRequestDuration records handler latency by route and method.
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "trivia_http_request_duration_seconds",
		Help:    "Latency of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

var (
	QuizQuestionsServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_quiz_questions_served_total",
			Help: "Quiz rounds answered, by outcome (question or exhausted)",
		},
		[]string{"outcome"},
	)

	CategoryCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trivia_category_cache_total",
			Help: "Category cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration)
	prometheus.MustRegister(QuizQuestionsServed, CategoryCacheLookups)
}
