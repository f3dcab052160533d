package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"bed_forecast/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	seriesPredicted = "Predicted"
	seriesWorstCase = "Worst Case"
	seriesCapacity  = "Capacity"

	errRenderChart = "failed to render chart"
)

// @Summary      7-day occupancy chart
// @Description  HTML line chart of predicted and worst-case occupancy against total capacity. Errors use the same payloads as /predict.
// @Tags         forecast
// @Produce      html
// @Param        date  query     string  true  "Start date (YYYY-MM-DD)"  example(2024-03-04)
// @Success      200   {string}  string  "HTML page"
// @Failure      400   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /predict/chart [get]
func (h *Handler) predictChart(c *gin.Context) {
	date := c.Query("date")
	days, err := h.services.Forecast(c.Request.Context(), date)
	if err != nil {
		h.writeForecastError(c, date, err)
		return
	}

	var buf bytes.Buffer
	if err := forecastChart(days, h.services.Policy().Capacity.TotalBeds).Render(&buf); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRenderChart, "chart_render_failed", err, "date", date)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// forecastChart plots the forecast with the Y axis pinned to [0, totalBeds].
func forecastChart(days []models.DailyForecast, totalBeds int) *charts.Line {
	dates := make([]string, 0, len(days))
	predicted := make([]opts.LineData, 0, len(days))
	worst := make([]opts.LineData, 0, len(days))
	capacity := make([]opts.LineData, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Date)
		predicted = append(predicted, opts.LineData{Value: d.PredictedOccupancy})
		worst = append(worst, opts.LineData{Value: d.WorstCase})
		capacity = append(capacity, opts.LineData{Value: totalBeds})
	}

	title := "Bed occupancy forecast"
	if len(days) > 0 {
		title = fmt.Sprintf("Bed occupancy forecast %s to %s", days[0].Date, days[len(days)-1].Date)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Bed Forecast",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("Total beds: %d", totalBeds),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Beds", Min: 0, Max: totalBeds}),
	)
	line.SetXAxis(dates).
		AddSeries(seriesPredicted, predicted).
		AddSeries(seriesWorstCase, worst).
		AddSeries(seriesCapacity, capacity)
	return line
}
