package service

import (
	"context"
	"time"

	"bed_forecast/internal/logger"
	"bed_forecast/internal/metrics"
	"bed_forecast/internal/model"
	"bed_forecast/internal/models"
	"bed_forecast/internal/repository"
)

// ModelHandle is the process-wide forecasting model as seen by the pipeline.
type ModelHandle interface {
	Available() bool
	Predict(ctx context.Context, f models.DateFeatures) (models.PointForecast, error)
	Info() model.Info
}

// FeatureBuilder turns a calendar date into the model's input record.
type FeatureBuilder interface {
	Build(date time.Time) models.DateFeatures
}

// Classifier derives availability and risk from a raw prediction.
type Classifier interface {
	Classify(date time.Time, pf models.PointForecast) models.DailyForecast
}

// ForecastCache stores complete forecast sequences. Implementations may be remote.
type ForecastCache interface {
	Get(ctx context.Context, key string) ([]models.DailyForecast, bool, error)
	Set(ctx context.Context, key string, days []models.DailyForecast) error
}

// Forecaster runs the validate -> predict -> classify pipeline.
type Forecaster interface {
	Forecast(ctx context.Context, rawDate string) ([]models.DailyForecast, error)
	ModelInfo() model.Info
	Policy() Policy
	RecordModelState(ctx context.Context)
}

// EventLog exposes the operational journal with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ForecastEvent, error)
}

// Service aggregates all sub-services consumed by the HTTP layer.
type Service struct {
	Forecaster
	EventLog
}

// Options carries everything the services need besides repositories.
type Options struct {
	Model   ModelHandle
	Policy  Policy
	Cache   ForecastCache // optional
	Metrics *metrics.Metrics
	Log     *logger.Logger
}

// NewService wires the repository layer and the model handle into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	return &Service{
		Forecaster: NewForecastService(opts.Model, repos.EventRepo, opts),
		EventLog:   NewEventLogService(repos.EventRepo),
	}
}
