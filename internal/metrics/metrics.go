// Package metrics exposes Prometheus instrumentation for the forecast service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Forecast outcomes.
const (
	OutcomeOK               = "ok"
	OutcomeCached           = "cached"
	OutcomeInvalidDate      = "invalid_date"
	OutcomeModelUnavailable = "model_unavailable"
	OutcomeTimeout          = "timeout"
	OutcomeFailed           = "failed"
)

// Metrics owns a private registry so several instances can coexist in tests.
// All recording methods are safe on a nil receiver.
type Metrics struct {
	registry          *prometheus.Registry
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	forecastsTotal    *prometheus.CounterVec
	forecastDuration  prometheus.Histogram
	inferenceDuration prometheus.Histogram
	inferenceErrors   prometheus.Counter
	criticalDays      prometheus.Counter
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	modelAvailable    prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		forecastsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bed_forecasts_total",
			Help: "Forecast requests by outcome.",
		}, []string{"outcome"}),
		forecastDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bed_forecast_duration_seconds",
			Help:    "Time to produce a full forecast sequence.",
			Buckets: prometheus.DefBuckets,
		}),
		inferenceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bed_model_inference_duration_seconds",
			Help:    "Single-day model inference latency.",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 2, 5},
		}),
		inferenceErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bed_model_inference_errors_total",
			Help: "Failed single-day inferences.",
		}),
		criticalDays: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bed_forecast_critical_days_total",
			Help: "Forecast days classified CRITICAL.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bed_forecast_cache_hits_total",
			Help: "Total forecast cache hits observed.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bed_forecast_cache_misses_total",
			Help: "Total forecast cache misses observed.",
		}),
		modelAvailable: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bed_model_available",
			Help: "1 when the forecasting model is loaded, 0 in degraded mode.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpDuration,
		m.forecastsTotal,
		m.forecastDuration,
		m.inferenceDuration,
		m.inferenceErrors,
		m.criticalDays,
		m.cacheHits,
		m.cacheMisses,
		m.modelAvailable,
	)
	return m
}

// Middleware records request count and latency per matched gin route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ForecastOutcome(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.forecastsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK || outcome == OutcomeCached {
		m.forecastDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) Inference(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.inferenceDuration.Observe(d.Seconds())
	if err != nil {
		m.inferenceErrors.Inc()
	}
}

func (m *Metrics) CriticalDays(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.criticalDays.Add(float64(n))
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}

func (m *Metrics) SetModelAvailable(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.modelAvailable.Set(1)
		return
	}
	m.modelAvailable.Set(0)
}
