package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_orders_created_total",
			Help: "Gateway orders created",
		},
	)

	paymentsVerified = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_verified_total",
			Help: "Payments with a valid gateway signature",
		},
	)
)

func ObserveRequest(method, path string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

func OrderCreated() {
	ordersCreated.Inc()
}

func PaymentVerified() {
	paymentsVerified.Inc()
}

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
