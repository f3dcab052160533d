package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"bed_forecast/internal/model"
	"bed_forecast/internal/models"
)

type fakeModel struct {
	available bool
	info      model.Info
	predict   func(f models.DateFeatures) (models.PointForecast, error)

	mu    sync.Mutex
	calls []models.DateFeatures
}

func (m *fakeModel) Available() bool { return m.available }
func (m *fakeModel) Info() model.Info {
	info := m.info
	info.Available = m.available
	return info
}
func (m *fakeModel) Predict(ctx context.Context, f models.DateFeatures) (models.PointForecast, error) {
	m.mu.Lock()
	m.calls = append(m.calls, f)
	m.mu.Unlock()
	if !m.available {
		return models.PointForecast{}, ErrModelUnavailable
	}
	return m.predict(f)
}

// constantModel predicts the same values for every day.
func constantModel(expected, upper float64) *fakeModel {
	return &fakeModel{
		available: true,
		info:      model.Info{Source: "test", Version: "v-test"},
		predict: func(models.DateFeatures) (models.PointForecast, error) {
			return models.PointForecast{Expected: expected, Upper: upper}, nil
		},
	}
}

type countingFeatures struct {
	inner FeatureBuilder
	calls int
}

func (c *countingFeatures) Build(date time.Time) models.DateFeatures {
	c.calls++
	return c.inner.Build(date)
}

type countingClassifier struct {
	inner Classifier
	calls int
}

func (c *countingClassifier) Classify(date time.Time, pf models.PointForecast) models.DailyForecast {
	c.calls++
	return c.inner.Classify(date, pf)
}

type localEventRepo struct {
	appendErr error
	events    []models.ForecastEvent
	listErr   error
}

func (f *localEventRepo) Append(ctx context.Context, e models.ForecastEvent) error {
	f.events = append(f.events, e)
	return f.appendErr
}
func (f *localEventRepo) List(ctx context.Context, from time.Time, to time.Time, typ string) ([]models.ForecastEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.ForecastEvent
	for _, e := range f.events {
		if (from.IsZero() || !e.OccurredAt.Before(from)) && (to.IsZero() || !e.OccurredAt.After(to)) {
			if typ == "" || e.Type == typ {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

func (f *localEventRepo) types() []string {
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeCache struct {
	data   map[string][]models.DailyForecast
	getErr error
	setErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]models.DailyForecast{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]models.DailyForecast, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, days []models.DailyForecast) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = days
	return nil
}

var errBoom = errors.New("boom")
