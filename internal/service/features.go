package service

import (
	"time"

	"bed_forecast/internal/models"
)

// DateFeatureBuilder builds the model input for one day. The holiday flag is a
// weekday proxy that must stay identical to the convention the model was fit with.
type DateFeatureBuilder struct {
	restDay time.Weekday
}

func NewDateFeatureBuilder(restDay time.Weekday) *DateFeatureBuilder {
	return &DateFeatureBuilder{restDay: restDay}
}

// Build is a pure function of the date.
func (b *DateFeatureBuilder) Build(date time.Time) models.DateFeatures {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return models.DateFeatures{
		TargetDate: day,
		IsHoliday:  day.Weekday() == b.restDay,
	}
}
