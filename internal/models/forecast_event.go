package models

import "time"

// Journal event types.
const (
	EventModelLoaded      = "MODEL_LOADED"
	EventModelUnavailable = "MODEL_UNAVAILABLE"
	EventForecast         = "FORECAST"
	EventForecastFailed   = "FORECAST_FAILED"
	EventInvalidDate      = "INVALID_DATE"
)

// EventTypes lists every type the journal records, in pipeline order.
var EventTypes = []string{
	EventModelLoaded,
	EventModelUnavailable,
	EventForecast,
	EventForecastFailed,
	EventInvalidDate,
}

// IsEventType reports whether typ is a journal event type.
func IsEventType(typ string) bool {
	for _, t := range EventTypes {
		if t == typ {
			return true
		}
	}
	return false
}

// ForecastEvent is a single operational journal entry.
type ForecastEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // MODEL_LOADED | MODEL_UNAVAILABLE | FORECAST | FORECAST_FAILED | INVALID_DATE
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
