package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"bed_forecast/internal/models"
)

const (
	secondsPerDay = 86400
	yearPeriod    = 365.25 // days
)

// Artifact is the serialized form of an additive occupancy model:
//
//	yhat       = intercept + slope*t + weekly[dow] + yearly(t) + holiday_effect*is_holiday
//	yhat_upper = yhat + upper_margin + margin_growth_per_day*max(0, days past history_end)
//
// t counts days since Origin; dow uses Monday=0..Sunday=6.
type Artifact struct {
	Version    string `json:"version"`
	Origin     string `json:"origin"`
	HistoryEnd string `json:"history_end,omitempty"`
	Trend      struct {
		Intercept   float64 `json:"intercept"`
		SlopePerDay float64 `json:"slope_per_day"`
	} `json:"trend"`
	Weekly []float64 `json:"weekly"`
	Yearly struct {
		Cos []float64 `json:"cos"`
		Sin []float64 `json:"sin"`
	} `json:"yearly"`
	HolidayEffect      float64 `json:"holiday_effect"`
	UpperMargin        float64 `json:"upper_margin"`
	MarginGrowthPerDay float64 `json:"margin_growth_per_day"`
}

// ArtifactModel evaluates an Artifact in-process. Immutable after construction.
type ArtifactModel struct {
	a          Artifact
	origin     time.Time
	historyEnd time.Time
}

var errInvalidArtifact = errors.New("invalid model artifact")

// LoadArtifact reads and validates the artifact at path.
func LoadArtifact(path string) (*ArtifactModel, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", errInvalidArtifact)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact %q: %w", path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var a Artifact
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("decode model artifact %q: %w", path, err)
	}
	return NewArtifactModel(a)
}

// NewArtifactModel validates a and prepares it for evaluation.
func NewArtifactModel(a Artifact) (*ArtifactModel, error) {
	origin, err := time.Parse(models.DateLayout, a.Origin)
	if err != nil {
		return nil, fmt.Errorf("%w: origin %q: %v", errInvalidArtifact, a.Origin, err)
	}
	historyEnd := origin
	if a.HistoryEnd != "" {
		if historyEnd, err = time.Parse(models.DateLayout, a.HistoryEnd); err != nil {
			return nil, fmt.Errorf("%w: history_end %q: %v", errInvalidArtifact, a.HistoryEnd, err)
		}
	}
	if len(a.Weekly) != 7 {
		return nil, fmt.Errorf("%w: weekly needs 7 coefficients, got %d", errInvalidArtifact, len(a.Weekly))
	}
	if len(a.Yearly.Cos) != len(a.Yearly.Sin) {
		return nil, fmt.Errorf("%w: yearly cos/sin length mismatch (%d/%d)", errInvalidArtifact, len(a.Yearly.Cos), len(a.Yearly.Sin))
	}
	if a.UpperMargin < 0 || a.MarginGrowthPerDay < 0 {
		return nil, fmt.Errorf("%w: margins must be non-negative", errInvalidArtifact)
	}
	coeffs := []float64{a.Trend.Intercept, a.Trend.SlopePerDay, a.HolidayEffect, a.UpperMargin, a.MarginGrowthPerDay}
	coeffs = append(coeffs, a.Weekly...)
	coeffs = append(coeffs, a.Yearly.Cos...)
	coeffs = append(coeffs, a.Yearly.Sin...)
	for _, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: non-finite coefficient", errInvalidArtifact)
		}
	}
	return &ArtifactModel{a: a, origin: origin, historyEnd: historyEnd}, nil
}

// Version returns the artifact's declared version, or its origin date if unset.
func (m *ArtifactModel) Version() string {
	if m.a.Version != "" {
		return m.a.Version
	}
	return m.a.Origin
}

// Predict evaluates the model for one day.
func (m *ArtifactModel) Predict(ctx context.Context, f models.DateFeatures) (models.PointForecast, error) {
	if err := ctx.Err(); err != nil {
		return models.PointForecast{}, err
	}
	day := truncateToDay(f.TargetDate)
	t := float64(daysBetween(m.origin, day))

	yhat := m.a.Trend.Intercept + m.a.Trend.SlopePerDay*t
	yhat += m.a.Weekly[models.MondayIndex(day.Weekday())]
	yhat += m.yearly(t)
	if f.IsHoliday {
		yhat += m.a.HolidayEffect
	}

	margin := m.a.UpperMargin
	if ahead := daysBetween(m.historyEnd, day); ahead > 0 {
		margin += m.a.MarginGrowthPerDay * float64(ahead)
	}
	return models.PointForecast{Expected: yhat, Upper: yhat + margin}, nil
}

func (m *ArtifactModel) yearly(t float64) float64 {
	var s float64
	for k := range m.a.Yearly.Cos {
		x := 2 * math.Pi * float64(k+1) * t / yearPeriod
		s += m.a.Yearly.Cos[k]*math.Cos(x) + m.a.Yearly.Sin[k]*math.Sin(x)
	}
	return s
}

func truncateToDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from a to b without Duration overflow.
func daysBetween(a, b time.Time) int64 {
	return (b.Unix() - a.Unix()) / secondsPerDay
}
