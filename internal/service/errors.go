package service

import (
	"errors"
	"fmt"

	"bed_forecast/internal/model"
)

var (
	ErrModelUnavailable  = model.ErrUnavailable
	ErrPredictionTimeout = model.ErrTimeout
	ErrInvalidDate       = errors.New("invalid date format, use YYYY-MM-DD")

	errBadModelOutput = errors.New("model returned an unusable value")
)

// PredictionError aborts a whole forecast request; Day is the zero-based offset that failed.
type PredictionError struct {
	Day  int
	Date string
	Err  error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed on day %d (%s): %v", e.Day, e.Date, e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }

// PublicMessage is the short, client-safe description of the failure.
func (e *PredictionError) PublicMessage() string {
	if errors.Is(e.Err, ErrPredictionTimeout) {
		return "Prediction timed out for " + e.Date + "."
	}
	return "Prediction failed for " + e.Date + "."
}
