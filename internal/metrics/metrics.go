package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	APIRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "schooladmin", Name: "api_requests_total", Help: "Requests to the school backend",
	}, []string{"resource", "method", "code"})

	APILatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "schooladmin", Name: "api_request_seconds", Help: "Backend request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource", "method"})

	SessionExpired = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "schooladmin", Name: "session_expired_total", Help: "Sessions invalidated by a 401",
	})

	StaleResponses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "schooladmin", Name: "stale_responses_total", Help: "List responses discarded by request fencing",
	}, []string{"resource"})
)

func init() {
	prometheus.MustRegister(APIRequests, APILatency, SessionExpired, StaleResponses)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveRequest(resource, method string, code int, d time.Duration) {
	APIRequests.WithLabelValues(resource, method, strconv.Itoa(code)).Inc()
	APILatency.WithLabelValues(resource, method).Observe(d.Seconds())
}
