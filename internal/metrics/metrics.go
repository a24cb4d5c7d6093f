package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	exchangeRateLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_rate_lookups_total",
			Help: "Exchange rate lookups by outcome (cache_hit, fetched, fallback).",
		},
		[]string{"outcome"},
	)

	orderTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_status_transitions_total",
			Help: "Applied order status transitions.",
		},
		[]string{"from", "to"},
	)

	webhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Received webhook events by provider and result.",
		},
		[]string{"provider", "result"},
	)

	fulfillmentSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_submissions_total",
			Help: "Fulfillment provider submissions by result.",
		},
		[]string{"result"},
	)
)

func RecordExchangeRateLookup(outcome string) {
	exchangeRateLookups.WithLabelValues(outcome).Inc()
}

func RecordOrderTransition(from, to string) {
	orderTransitions.WithLabelValues(from, to).Inc()
}

func RecordWebhookEvent(provider, result string) {
	webhookEvents.WithLabelValues(provider, result).Inc()
}

func RecordFulfillmentSubmission(result string) {
	fulfillmentSubmissions.WithLabelValues(result).Inc()
}

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware labels requests by the matched mux pattern so path values do
// not explode the label set. Requests that match no route share one label.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {
			path := r.Pattern
			if path == "" {
				path = "unmatched"
			}

			statusCodeStr := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, path).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
			httpRequestsInFlight.Dec()
		}()

		next.ServeHTTP(rw, r)
	})
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
