package service

import (
	"time"

	"bed_forecast/internal/models"
)

// Policy holds the fixed decision constants of the pipeline.
type Policy struct {
	Capacity    models.Capacity
	HorizonDays int
	RestDay     time.Weekday
}

// Defaults the model was built for.
const (
	DefaultHorizonDays       = 7
	DefaultTotalBeds         = 150
	DefaultCriticalThreshold = 15
	// DefaultRestDay is the weekly "holiday" indicator the model was fit against
	// (index 6 in a Monday=0..Sunday=6 scheme). Not a holiday calendar.
	DefaultRestDay = time.Sunday
)

// DefaultPolicy returns the production policy.
func DefaultPolicy() Policy {
	return Policy{
		Capacity: models.Capacity{
			TotalBeds:         DefaultTotalBeds,
			CriticalThreshold: DefaultCriticalThreshold,
		},
		HorizonDays: DefaultHorizonDays,
		RestDay:     DefaultRestDay,
	}
}

// LogFilter supports journal filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "MODEL_LOADED", "MODEL_UNAVAILABLE", "FORECAST", "FORECAST_FAILED", "INVALID_DATE"
}
