package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"bed_forecast/internal/service"
)

func TestPredictChart_RendersSeries(t *testing.T) {
	fc := &mockForecaster{days: sampleForecast(), policy: service.DefaultPolicy()}
	r := newTestRouter(&service.Service{Forecaster: fc}, false)

	w := doGet(r, "/predict/chart?date=2024-03-04")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("content-type=%q", ct)
	}
	if !containsAll(w.Body.String(), seriesPredicted, seriesWorstCase, seriesCapacity, "2024-03-10") {
		t.Fatalf("chart is missing series or dates")
	}
}

func TestPredictChart_ErrorsMatchPredict(t *testing.T) {
	fc := &mockForecaster{err: service.ErrModelUnavailable}
	r := newTestRouter(&service.Service{Forecaster: fc}, true)

	w := doGet(r, "/predict/chart?date=2024-03-04")
	if w.Code != http.StatusServiceUnavailable || !containsAll(w.Body.String(), errModelNotLoaded) {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestForecastChart_YAxisPinnedToCapacity(t *testing.T) {
	line := forecastChart(sampleForecast(), 150)
	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !containsAll(buf.String(), `"max":150`, `"min":0`) {
		t.Fatalf("y axis not pinned to [0, 150]")
	}
}
