package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lgtm-migrator/mecj-demo/pkg/types"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mecjd",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mecjd",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mecjd",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "In-flight HTTP requests",
		},
	)

	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mecjd",
			Name:      "predictions_total",
			Help:      "Prediction requests by model slot and outcome",
		},
		[]string{"model", "outcome"},
	)

	modelReady = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "mecjd",
			Name:      "model_ready",
			Help:      "1 once the model slot is ready",
		},
		[]string{"slot"},
	)

	trainingDuration = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mecjd",
			Name:      "training_duration_seconds",
			Help:      "Wall-clock duration of the tabular training run",
		},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mecjd",
			Name:      "prediction_cache_lookups_total",
			Help:      "Tabular prediction cache lookups by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, httpInflight,
		predictionsTotal, modelReady, trainingDuration, cacheLookups)
	modelReady.WithLabelValues(string(types.SlotTabular)).Set(0)
	modelReady.WithLabelValues(string(types.SlotSequence)).Set(0)
}

// prediction outcomes
const (
	outcomeOK         = "ok"
	outcomeNotReady   = "not_ready"
	outcomeBadRequest = "bad_request"
	outcomeError      = "error"
)

// statusRecorder wraps http.ResponseWriter to capture status code
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware instruments requests for Prometheus. The route label is
// read after the handler ran so chi has resolved the pattern.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInflight.Inc()
		defer httpInflight.Dec()

		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sr, r)
		path := routePatternOrPath(r)
		statusLabel := strconv.Itoa(sr.status)
		httpRequestsTotal.WithLabelValues(path, r.Method, statusLabel).Inc()
		httpRequestDuration.WithLabelValues(path, r.Method, statusLabel).Observe(time.Since(start).Seconds())
	})
}

// routePatternOrPath returns the chi route pattern if available, otherwise
// falls back to URL path. This avoids high-cardinality label values.
func routePatternOrPath(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

func observePrediction(slot types.Slot, outcome string) {
	predictionsTotal.WithLabelValues(string(slot), outcome).Inc()
}

// SetModelReady flips the readiness gauge for slot. Safe to pass as a registry publish hook.
func SetModelReady(slot types.Slot) {
	modelReady.WithLabelValues(string(slot)).Set(1)
}

// ObserveTraining records the tabular training duration.
func ObserveTraining(d time.Duration) {
	trainingDuration.Set(d.Seconds())
}

// ObserveCacheLookup counts one prediction cache lookup.
func ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(result).Inc()
}
