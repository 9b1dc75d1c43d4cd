package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Histogram buckets tuned for API latencies ranging from sub-millisecond
	// store lookups to deliberately slow bcrypt hashing on login/register.
	APIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8}

	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: APIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Auth Metrics
	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_registrations_total",
			Help: "Total user registration attempts",
		},
		[]string{"status"},
	)

	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_logins_total",
			Help: "Total login attempts",
		},
		[]string{"status"},
	)

	TokenValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_token_validations_total",
			Help: "Total access token validations performed by the auth gate",
		},
		[]string{"status"},
	)

	// Business Metrics
	SessionOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_session_operations_total",
			Help: "Total mentoring session operations",
		},
		[]string{"operation", "status"},
	)

	FeedbackOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentorhub_feedback_operations_total",
			Help: "Total feedback operations",
		},
		[]string{"operation", "status"},
	)

	// Infrastructure Metrics
	GoRoutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
