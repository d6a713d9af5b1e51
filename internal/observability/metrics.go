package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yungbote/salesflow-backend/internal/platform/envutil"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
)

type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	stepsGenerated   *prometheus.CounterVec
	evidenceLookups  *prometheus.CounterVec
	evidenceDuration prometheus.Histogram
	eventsPublished  *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	current     *Metrics
)

func Enabled() bool {
	return envutil.Bool("METRICS_ENABLED", false)
}

// Current returns the process-wide Metrics, or nil before Init.
func Current() *Metrics {
	return current
}

// Init registers the process-wide metrics once. It returns nil when METRICS_ENABLED is off.
func Init(log *logger.Logger) *Metrics {
	if !Enabled() {
		return nil
	}
	metricsOnce.Do(func() {
		current = NewMetrics(prometheus.NewRegistry())
		current.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		if log != nil {
			log.Info("prometheus metrics enabled")
		}
	})
	return current
}

// NewMetrics registers the service metrics on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salesflow_api_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "salesflow_api_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "salesflow_api_inflight_requests",
			Help: "HTTP requests currently being served",
		}),
		stepsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salesflow_steps_generated_total",
			Help: "Generated script steps by step type and triggering response",
		}, []string{"step_type", "response_type"}),
		evidenceLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salesflow_evidence_lookups_total",
			Help: "Evidence summary lookups by outcome (found, empty)",
		}, []string{"outcome"}),
		evidenceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "salesflow_evidence_lookup_duration_seconds",
			Help:    "Time spent assembling the evidence summary",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salesflow_events_published_total",
			Help: "Step events published to the bus by status",
		}, []string{"status"}),
	}
	reg.MustRegister(
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.stepsGenerated,
		m.evidenceLookups,
		m.evidenceDuration,
		m.eventsPublished,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) IncStepGenerated(stepType, responseType string) {
	if m == nil {
		return
	}
	if stepType == "" {
		stepType = "unknown"
	}
	if responseType == "" {
		responseType = "none"
	}
	m.stepsGenerated.WithLabelValues(stepType, responseType).Inc()
}

func (m *Metrics) ObserveEvidenceLookup(found bool, dur time.Duration) {
	if m == nil {
		return
	}
	outcome := "empty"
	if found {
		outcome = "found"
	}
	m.evidenceLookups.WithLabelValues(outcome).Inc()
	m.evidenceDuration.Observe(dur.Seconds())
}

func (m *Metrics) IncEventPublished(ok bool) {
	if m == nil {
		return
	}
	status := "error"
	if ok {
		status = "ok"
	}
	m.eventsPublished.WithLabelValues(status).Inc()
}
