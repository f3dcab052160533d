package service

import (
	"time"

	"bed_forecast/internal/models"
)

// RiskClassifier turns a point forecast into the public daily result.
type RiskClassifier struct {
	capacity models.Capacity
}

func NewRiskClassifier(capacity models.Capacity) *RiskClassifier {
	return &RiskClassifier{capacity: capacity}
}

// Classify never fails. Occupancy and worst case are truncated toward zero,
// availability is not clamped, and the day is CRITICAL when fewer than
// CriticalThreshold beds remain in the worst case.
func (c *RiskClassifier) Classify(date time.Time, pf models.PointForecast) models.DailyForecast {
	occupancy := int(pf.Expected)
	worst := int(pf.Upper)

	risk := models.RiskLow
	if c.capacity.TotalBeds-worst < c.capacity.CriticalThreshold {
		risk = models.RiskCritical
	}
	return models.DailyForecast{
		Date:               date.Format(models.DateLayout),
		PredictedOccupancy: occupancy,
		WorstCase:          worst,
		AvailableBeds:      c.capacity.TotalBeds - occupancy,
		Risk:               risk,
	}
}
