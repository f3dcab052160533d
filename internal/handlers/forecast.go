package handlers

import (
	"errors"
	"net/http"

	"bed_forecast/internal/service"

	"github.com/gin-gonic/gin"
)

// Client-facing messages; existing consumers match on these strings.
const (
	errModelNotLoaded = "Model not loaded. Please checked backend logs."
	errInvalidDate    = "Invalid date format. Use YYYY-MM-DD."
	errForecastFailed = "Forecast failed."
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// status keeps the legacy always-200 contract unless strict mode is on.
func (h *Handler) status(code int) int {
	if h.strictStatus {
		return code
	}
	return http.StatusOK
}

// writeForecastError maps a pipeline error to its payload. The service
// already logged the failure context, so only unknown errors are logged here.
func (h *Handler) writeForecastError(c *gin.Context, date string, err error) {
	var perr *service.PredictionError
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		c.JSON(h.status(http.StatusBadRequest), gin.H{"error": errInvalidDate})
	case errors.Is(err, service.ErrModelUnavailable):
		c.JSON(h.status(http.StatusServiceUnavailable), gin.H{"error": errModelNotLoaded})
	case errors.As(err, &perr):
		code := http.StatusInternalServerError
		if errors.Is(err, service.ErrPredictionTimeout) {
			code = http.StatusGatewayTimeout
		}
		c.JSON(h.status(code), gin.H{"error": perr.PublicMessage()})
	default:
		h.logAndJSONError(c, h.status(http.StatusInternalServerError), errForecastFailed, "predict_unexpected_error", err, "date", date)
	}
}

// @Summary      7-day occupancy forecast
// @Description  Returns one entry per day starting at date. Errors are returned as {"error": "..."} with HTTP 200 unless strict status mode is enabled (400 invalid date, 503 model not loaded, 500 prediction failure, 504 timeout).
// @Tags         forecast
// @Produce      json
// @Param        date  query     string  true  "Start date (YYYY-MM-DD)"  example(2024-03-04)
// @Success      200   {array}   models.DailyForecast
// @Failure      400   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Failure      504   {object}  map[string]string
// @Router       /predict [get]
func (h *Handler) predict(c *gin.Context) {
	date := c.Query("date")
	days, err := h.services.Forecast(c.Request.Context(), date)
	if err != nil {
		h.writeForecastError(c, date, err)
		return
	}
	c.JSON(http.StatusOK, days)
}
