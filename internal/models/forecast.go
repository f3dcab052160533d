package models

import "time"

// DateLayout is the only accepted wire format for calendar dates.
const DateLayout = "2006-01-02"

// RiskLevel is the coarse capacity-strain label of a forecast day.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskCritical RiskLevel = "CRITICAL"
)

// DateFeatures is a single day's model input.
type DateFeatures struct {
	TargetDate time.Time `json:"ds"`
	IsHoliday  bool      `json:"is_holiday"`
}

// PointForecast is a single day's raw model output.
type PointForecast struct {
	Expected float64 `json:"yhat"`
	Upper    float64 `json:"yhat_upper"` // worst case, expected >= Expected
}

// DailyForecast is one entry of the public forecast response.
type DailyForecast struct {
	Date               string    `json:"date" example:"2024-03-04"`
	PredictedOccupancy int       `json:"predicted_occupancy" example:"128"`
	WorstCase          int       `json:"worst_case" example:"139"`
	AvailableBeds      int       `json:"available_beds" example:"22"` // may be negative
	Risk               RiskLevel `json:"risk" example:"CRITICAL"`
}

// Capacity holds the facility-wide bed policy.
type Capacity struct {
	TotalBeds         int
	CriticalThreshold int // CRITICAL when free worst-case beds drop below this
}

// MondayIndex maps a weekday to the Monday=0..Sunday=6 convention the model was fit with.
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
