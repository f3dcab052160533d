package repository

import (
	"context"
	"database/sql"
	"time"

	"bed_forecast/internal/models"
)

// EventRepo is the append-only operational journal.
type EventRepo interface {
	Append(ctx context.Context, e models.ForecastEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ForecastEvent, error)
}

type Repository struct {
	EventRepo EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo: NewEventSQLite(db),
	}
}
