package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"bed_forecast/internal/logger"
	"bed_forecast/internal/metrics"
	"bed_forecast/internal/model"
	"bed_forecast/internal/models"
	"bed_forecast/internal/repository"

	"github.com/google/uuid"
)

// forecastCacheKeyFormat: model version, start date, horizon, total beds, threshold, rest day.
const forecastCacheKeyFormat = "bed_forecast_v2:%s:%s:%d:%d:%d:%s"

// maxPlausibleBeds bounds model outputs before the integer conversion.
const maxPlausibleBeds = 1e9

type ForecastService struct {
	model      ModelHandle
	features   FeatureBuilder
	classifier Classifier
	policy     Policy
	cache      ForecastCache
	eventRepo  repository.EventRepo
	metrics    *metrics.Metrics
	log        *logger.Logger
}

// NewForecastService builds the default pipeline for the given policy.
func NewForecastService(handle ModelHandle, eventRepo repository.EventRepo, opts Options) *ForecastService {
	policy := opts.Policy
	if policy.HorizonDays <= 0 {
		policy.HorizonDays = DefaultHorizonDays
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &ForecastService{
		model:      handle,
		features:   NewDateFeatureBuilder(policy.RestDay),
		classifier: NewRiskClassifier(policy.Capacity),
		policy:     policy,
		cache:      opts.Cache,
		eventRepo:  eventRepo,
		metrics:    opts.Metrics,
		log:        log.Component("forecast"),
	}
}

func (s *ForecastService) ModelInfo() model.Info {
	if s.model == nil {
		return model.Info{}
	}
	return s.model.Info()
}

func (s *ForecastService) Policy() Policy { return s.policy }

// Forecast validates rawDate first, then checks the model, then runs the pipeline.
func (s *ForecastService) Forecast(ctx context.Context, rawDate string) ([]models.DailyForecast, error) {
	start, err := ValidateDate(rawDate)
	if err == nil {
		err = ValidateHorizon(start, s.policy.HorizonDays)
	}
	if err != nil {
		s.log.Warnw("invalid_date", "date", rawDate)
		s.metrics.ForecastOutcome(metrics.OutcomeInvalidDate, 0)
		s.record(ctx, models.EventInvalidDate, "Rejected forecast request with invalid date", map[string]any{
			"date": rawDate,
		})
		return nil, err
	}
	return s.ForecastFrom(ctx, start)
}

// ForecastFrom produces exactly HorizonDays consecutive days starting at start,
// or a single error. Partial sequences are never returned.
func (s *ForecastService) ForecastFrom(ctx context.Context, start time.Time) ([]models.DailyForecast, error) {
	began := time.Now()
	startStr := start.Format(models.DateLayout)

	if s.model == nil || !s.model.Available() {
		s.log.Errorw("predict_called_without_model", "start", startStr)
		s.metrics.ForecastOutcome(metrics.OutcomeModelUnavailable, time.Since(began))
		return nil, ErrModelUnavailable
	}

	s.log.Infow("forecast_requested", "start", startStr, "horizon_days", s.policy.HorizonDays)

	key := s.cacheKey(startStr)
	if days, ok := s.cached(ctx, key); ok {
		s.metrics.ForecastOutcome(metrics.OutcomeCached, time.Since(began))
		return days, nil
	}

	days := make([]models.DailyForecast, 0, s.policy.HorizonDays)
	for i := 0; i < s.policy.HorizonDays; i++ {
		date := start.AddDate(0, 0, i)
		features := s.features.Build(date)

		inferStart := time.Now()
		pf, err := s.model.Predict(ctx, features)
		s.metrics.Inference(time.Since(inferStart), err)
		if err == nil {
			err = checkOutput(pf)
		}
		if err != nil {
			return nil, s.fail(ctx, start, i, date, err, began)
		}
		days = append(days, s.classifier.Classify(date, pf))
	}

	critical := countCritical(days)
	s.metrics.CriticalDays(critical)
	s.metrics.ForecastOutcome(metrics.OutcomeOK, time.Since(began))
	s.store(ctx, key, days)
	s.log.Infow("forecast_generated", "start", startStr, "days", len(days), "critical_days", critical)
	s.record(ctx, models.EventForecast, fmt.Sprintf("Generated %d-day forecast", len(days)), map[string]any{
		"start":         startStr,
		"days":          len(days),
		"critical_days": critical,
		"model_version": s.model.Info().Version,
	})
	return days, nil
}

// RecordModelState journals the startup load outcome.
func (s *ForecastService) RecordModelState(ctx context.Context) {
	info := s.ModelInfo()
	s.metrics.SetModelAvailable(info.Available)
	if info.Available {
		s.record(ctx, models.EventModelLoaded, "Model loaded", map[string]any{
			"source":  info.Source,
			"version": info.Version,
		})
		return
	}
	s.record(ctx, models.EventModelUnavailable, "Model failed to load; serving degraded", map[string]any{
		"source": info.Source,
		"error":  info.LoadError,
	})
}

func (s *ForecastService) fail(ctx context.Context, start time.Time, day int, date time.Time, err error, began time.Time) error {
	perr := &PredictionError{Day: day, Date: date.Format(models.DateLayout), Err: err}
	outcome := metrics.OutcomeFailed
	if errors.Is(err, ErrPredictionTimeout) {
		outcome = metrics.OutcomeTimeout
	}
	s.metrics.ForecastOutcome(outcome, time.Since(began))
	s.log.Errorw("forecast_failed",
		"start", start.Format(models.DateLayout),
		"day", day,
		"date", perr.Date,
		"err", err,
	)
	s.record(ctx, models.EventForecastFailed, perr.PublicMessage(), map[string]any{
		"start": start.Format(models.DateLayout),
		"day":   day,
		"error": err.Error(),
	})
	return perr
}

func (s *ForecastService) cacheKey(start string) string {
	return fmt.Sprintf(forecastCacheKeyFormat,
		s.model.Info().Version, start, s.policy.HorizonDays,
		s.policy.Capacity.TotalBeds, s.policy.Capacity.CriticalThreshold,
		strings.ToLower(s.policy.RestDay.String()))
}

// cached returns a usable cache hit; cache errors only cost a recomputation.
func (s *ForecastService) cached(ctx context.Context, key string) ([]models.DailyForecast, bool) {
	if s.cache == nil {
		return nil, false
	}
	days, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warnw("forecast_cache_get_failed", "key", key, "err", err)
		s.metrics.CacheMiss()
		return nil, false
	}
	if !ok || len(days) != s.policy.HorizonDays {
		s.metrics.CacheMiss()
		return nil, false
	}
	s.metrics.CacheHit()
	return days, true
}

func (s *ForecastService) store(ctx context.Context, key string, days []models.DailyForecast) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, days); err != nil {
		s.log.Warnw("forecast_cache_set_failed", "key", key, "err", err)
	}
}

// record appends a journal entry; journal failures never fail a request.
func (s *ForecastService) record(ctx context.Context, typ, description string, meta map[string]any) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.Append(ctx, models.ForecastEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
	if err != nil {
		s.log.Warnw("journal_append_failed", "type", typ, "err", err)
	}
}

func checkOutput(pf models.PointForecast) error {
	for _, v := range []float64{pf.Expected, pf.Upper} {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxPlausibleBeds {
			return fmt.Errorf("%w: yhat=%v yhat_upper=%v", errBadModelOutput, pf.Expected, pf.Upper)
		}
	}
	return nil
}

func countCritical(days []models.DailyForecast) int {
	n := 0
	for _, d := range days {
		if d.Risk == models.RiskCritical {
			n++
		}
	}
	return n
}
