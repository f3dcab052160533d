package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	m.ForecastOutcome(OutcomeOK, time.Second)
	m.Inference(time.Millisecond, errors.New("x"))
	m.CriticalDays(3)
	m.CacheHit()
	m.CacheMiss()
	m.SetModelAvailable(true)
}

func TestRecording(t *testing.T) {
	m := New()
	m.ForecastOutcome(OutcomeOK, 10*time.Millisecond)
	m.ForecastOutcome(OutcomeInvalidDate, 0)
	m.ForecastOutcome(OutcomeInvalidDate, 0)
	m.CriticalDays(2)
	m.CriticalDays(0)
	m.Inference(time.Millisecond, errors.New("boom"))
	m.SetModelAvailable(true)

	if got := testutil.ToFloat64(m.forecastsTotal.WithLabelValues(OutcomeInvalidDate)); got != 2 {
		t.Fatalf("invalid_date count=%v", got)
	}
	if got := testutil.ToFloat64(m.criticalDays); got != 2 {
		t.Fatalf("critical days=%v", got)
	}
	if got := testutil.ToFloat64(m.inferenceErrors); got != 1 {
		t.Fatalf("inference errors=%v", got)
	}
	if got := testutil.ToFloat64(m.modelAvailable); got != 1 {
		t.Fatalf("model available=%v", got)
	}
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/predict", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/predict", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	if got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/predict", "200")); got != 1 {
		t.Fatalf("predict requests=%v", got)
	}
	if got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("unmatched", "404")); got != 1 {
		t.Fatalf("unmatched requests=%v", got)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Fatalf("metrics endpoint status=%d body=%.200s", w.Code, w.Body.String())
	}
}
