package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bed_forecast/internal/models"
	"bed_forecast/internal/repository"
)

// ErrInvalidLogFilter is returned for journal queries that can never match.
var ErrInvalidLogFilter = errors.New("invalid journal filter")

// EventLogService reads the operational journal written by the forecast pipeline.
type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

// journalQuery is a LogFilter after normalisation: UTC bounds and a known type or "".
type journalQuery struct {
	from, to time.Time
	typ      string
}

func utcOrZero(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func newJournalQuery(f LogFilter) (journalQuery, error) {
	q := journalQuery{
		from: utcOrZero(f.From),
		to:   utcOrZero(f.To),
		typ:  strings.ToUpper(strings.TrimSpace(f.Type)),
	}
	if !q.from.IsZero() && !q.to.IsZero() && q.from.After(q.to) {
		return q, fmt.Errorf("%w: from %s is after to %s", ErrInvalidLogFilter,
			q.from.Format(time.RFC3339), q.to.Format(time.RFC3339))
	}
	if q.typ != "" && !models.IsEventType(q.typ) {
		return q, fmt.Errorf("%w: unknown event type %q, expected one of %s", ErrInvalidLogFilter,
			q.typ, strings.Join(models.EventTypes, ", "))
	}
	return q, nil
}

// List returns journal entries matching f, oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.ForecastEvent, error) {
	q, err := newJournalQuery(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, q.from, q.to, q.typ)
}
