package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	leadWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_writes_total",
			Help: "Total number of lead store mutations",
		},
		[]string{"operation", "result"},
	)

	paymentValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_validations_total",
			Help: "Total number of payment schedule validations",
		},
		[]string{"result"},
	)

	snapshotRefreshes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "snapshot_refreshes_total",
			Help: "Total number of lead snapshot replacements",
		},
	)

	dealClosedEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deal_closed_events_total",
			Help: "Total number of deal-closed events published",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadWrite(operation, result string) {
	leadWrites.WithLabelValues(operation, result).Inc()
}

func RecordPaymentValidation(result string) {
	paymentValidations.WithLabelValues(result).Inc()
}

func RecordSnapshotRefresh() {
	snapshotRefreshes.Inc()
}

func RecordDealClosedEvent() {
	dealClosedEvents.Inc()
}
