package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bed_forecast/internal/models"
	"bed_forecast/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errRange       = "'from' must be <= 'to'"
	errListLogs    = "failed to load logs"

	layoutDateTime = "2006-01-02 15:04:05"
)

// LogsResponse is the journal listing payload.
type LogsResponse struct {
	Count  int                    `json:"count" example:"1"`
	Events []models.ForecastEvent `json:"events"`
}

// @Summary      List journal events
// @Description  Operational journal: model load outcome, generated and failed forecasts, rejected dates. A date-only 'to' covers that whole day.
// @Tags         logs
// @Produce      json
// @Param        from  query     string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2024-03-01)
// @Param        to    query     string  false  "End of range, inclusive"  example(2024-03-31)
// @Param        type  query     string  false  "Event type"  Enums(MODEL_LOADED,MODEL_UNAVAILABLE,FORECAST,FORECAST_FAILED,INVALID_DATE)
// @Success      200   {object}  LogsResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	filter, msg := parseLogFilter(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	events, err := h.services.EventLog.List(c.Request.Context(), filter)
	if errors.Is(err, service.ErrInvalidLogFilter) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListLogs, "logs_list_failed", err,
			"from", filter.From, "to", filter.To, "type", filter.Type)
		return
	}
	if events == nil {
		events = []models.ForecastEvent{}
	}
	c.JSON(http.StatusOK, LogsResponse{Count: len(events), Events: events})
}

// parseLogFilter returns a non-empty message when the query is unusable.
func parseLogFilter(c *gin.Context) (service.LogFilter, string) {
	var f service.LogFilter
	f.Type = strings.ToUpper(strings.TrimSpace(c.Query("type")))

	if qs := c.Query("from"); qs != "" {
		t, err := parseQueryTime(qs)
		if err != nil {
			return f, errFromInvalid
		}
		f.From = t
	}
	if qs := c.Query("to"); qs != "" {
		t, err := parseQueryTime(qs)
		if err != nil {
			return f, errToInvalid
		}
		if !strings.ContainsAny(qs, "T ") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.To = t
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return f, errRange
	}
	return f, ""
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, models.DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q: expected RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'", s)
}
