package service

import (
	"fmt"
	"strings"
	"time"

	"bed_forecast/internal/models"
)

// ValidateDate parses a caller-supplied YYYY-MM-DD date. It touches nothing else.
func ValidateDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidDate)
	}
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return d, nil
}

// maxFormattableYear is the last year that still renders as four digits.
const maxFormattableYear = 9999

// ValidateHorizon rejects a start whose last forecast day cannot be written as YYYY-MM-DD.
func ValidateHorizon(start time.Time, days int) error {
	if days <= 0 {
		return nil
	}
	if last := start.AddDate(0, 0, days-1); last.Year() > maxFormattableYear {
		return fmt.Errorf("%w: %s + %d days runs past year %d", ErrInvalidDate, start.Format(models.DateLayout), days-1, maxFormattableYear)
	}
	return nil
}
