package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "thursday_league"

// Recorder receives domain events worth counting.
type Recorder interface {
	SubmissionRecorded(outcome string)
	ResetPerformed(kind string, deleted int64)
	OverrideFallback(reason string)
}

// Submission outcomes.
const (
	OutcomeAccepted      = "accepted"
	OutcomeDuplicate     = "duplicate"
	OutcomeWindowClosed  = "window_closed"
	OutcomeInvalid       = "invalid"
	OutcomeStoreFailure  = "store_failure"
	OutcomeAdminOverride = "admin_override"
)

// Registry owns a dedicated prometheus registry for the service.
type Registry struct {
	reg          *prometheus.Registry
	submissions  *prometheus.CounterVec
	resets       *prometheus.CounterVec
	resetRows    *prometheus.CounterVec
	fallbacks    *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Stat submissions by outcome.",
		}, []string{"outcome"}),
		resets: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Bulk resets performed by kind.",
		}, []string{"kind"}),
		resetRows: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reset_deleted_rows_total",
			Help:      "Submission rows deleted by bulk resets.",
		}, []string{"kind"}),
		fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "window_override_fallbacks_total",
			Help:      "Times the default schedule was used because the override could not be read.",
		}, []string{"reason"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (r *Registry) SubmissionRecorded(outcome string) {
	r.submissions.WithLabelValues(outcome).Inc()
}

func (r *Registry) ResetPerformed(kind string, deleted int64) {
	r.resets.WithLabelValues(kind).Inc()
	if deleted > 0 {
		r.resetRows.WithLabelValues(kind).Add(float64(deleted))
	}
}

func (r *Registry) OverrideFallback(reason string) {
	r.fallbacks.WithLabelValues(reason).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Instrument must wrap the ServeMux directly so the matched pattern is
// visible on the request after routing.
func (r *Registry) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		route := req.Pattern
		if route == "" {
			route = "unmatched"
		}
		r.httpRequests.WithLabelValues(req.Method, route, strconv.Itoa(rec.status)).Inc()
		r.httpLatency.WithLabelValues(req.Method, route).Observe(time.Since(started).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Nop discards every event.
type Nop struct{}

func (Nop) SubmissionRecorded(string)    {}
func (Nop) ResetPerformed(string, int64) {}
func (Nop) OverrideFallback(string)      {}
