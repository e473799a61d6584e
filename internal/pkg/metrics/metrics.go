// Package metrics exposes Prometheus metrics for the coverage engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Manager struct {
	admissionChecks  *prometheus.CounterVec
	riskyAdmissions  prometheus.Counter
	ledgerInits      prometheus.Counter
	usageRecorded    prometheus.Counter
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	admissionLatency prometheus.Histogram
}

func New(reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)
	return &Manager{
		admissionChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pto",
			Name:      "admission_checks_total",
			Help:      "Single-request coverage admission checks, by outcome.",
		}, []string{"risk"}),
		riskyAdmissions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pto",
			Name:      "risky_requests_admitted_total",
			Help:      "Requests created despite a coverage risk flag.",
		}),
		ledgerInits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pto",
			Name:      "ledger_initializations_total",
			Help:      "Leave balance ledgers initialized.",
		}),
		usageRecorded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pto",
			Name:      "ledger_usage_recorded_total",
			Help:      "Usage mutations applied to a ledger.",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pto",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests, by method and status code.",
		}, []string{"method", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pto",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		admissionLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pto",
			Name:      "admission_check_duration_seconds",
			Help:      "Latency of the serialized admission check.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Manager) RecordAdmissionCheck(risk bool, elapsed time.Duration) {
	m.admissionChecks.WithLabelValues(strconv.FormatBool(risk)).Inc()
	if risk {
		m.riskyAdmissions.Inc()
	}
	m.admissionLatency.Observe(elapsed.Seconds())
}

func (m *Manager) RecordLedgerInit() {
	m.ledgerInits.Inc()
}

func (m *Manager) RecordUsage() {
	m.usageRecorded.Inc()
}

// Middleware records request counts and latency for every route.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		m.httpRequests.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
		m.httpDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the scrape endpoint for the given gatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
