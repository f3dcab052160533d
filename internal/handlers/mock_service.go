package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"bed_forecast/internal/model"
	"bed_forecast/internal/models"
	"bed_forecast/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockForecaster struct {
	days   []models.DailyForecast
	err    error
	info   model.Info
	policy service.Policy

	calls    int
	lastDate string
}

func (m *mockForecaster) Forecast(ctx context.Context, rawDate string) ([]models.DailyForecast, error) {
	m.calls++
	m.lastDate = rawDate
	return m.days, m.err
}
func (m *mockForecaster) ModelInfo() model.Info            { return m.info }
func (m *mockForecaster) Policy() service.Policy           { return m.policy }
func (m *mockForecaster) RecordModelState(context.Context) {}

type mockEventLog struct {
	resp     []models.ForecastEvent
	err      error
	calls    int
	lastType string
	filter   service.LogFilter
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.ForecastEvent, error) {
	m.calls++
	m.filter = f
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func sampleForecast() []models.DailyForecast {
	return []models.DailyForecast{
		{Date: "2024-03-04", PredictedOccupancy: 120, WorstCase: 131, AvailableBeds: 30, Risk: models.RiskLow},
		{Date: "2024-03-05", PredictedOccupancy: 122, WorstCase: 133, AvailableBeds: 28, Risk: models.RiskLow},
		{Date: "2024-03-06", PredictedOccupancy: 125, WorstCase: 136, AvailableBeds: 25, Risk: models.RiskCritical},
		{Date: "2024-03-07", PredictedOccupancy: 124, WorstCase: 135, AvailableBeds: 26, Risk: models.RiskLow},
		{Date: "2024-03-08", PredictedOccupancy: 126, WorstCase: 138, AvailableBeds: 24, Risk: models.RiskCritical},
		{Date: "2024-03-09", PredictedOccupancy: 110, WorstCase: 121, AvailableBeds: 40, Risk: models.RiskLow},
		{Date: "2024-03-10", PredictedOccupancy: 140, WorstCase: 152, AvailableBeds: 10, Risk: models.RiskCritical},
	}
}

func newTestRouter(s *service.Service, strict bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, Options{StrictStatus: strict})
	return h.InitRoutes()
}

func doGet(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}
