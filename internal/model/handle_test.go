package model

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bed_forecast/internal/logger"
	"bed_forecast/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type predictorFunc func(ctx context.Context, f models.DateFeatures) (models.PointForecast, error)

func (p predictorFunc) Predict(ctx context.Context, f models.DateFeatures) (models.PointForecast, error) {
	return p(ctx, f)
}

func TestHandle_Unavailable(t *testing.T) {
	h := Unavailable("artifacts/missing.json", errors.New("no such file"))
	assert.False(t, h.Available())
	assert.Equal(t, "no such file", h.Info().LoadError)

	_, err := h.Predict(context.Background(), models.DateFeatures{})
	assert.ErrorIs(t, err, ErrUnavailable)

	var nilHandle *Handle
	assert.False(t, nilHandle.Available())
	_, err = nilHandle.Predict(context.Background(), models.DateFeatures{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHandle_PredictPassesThrough(t *testing.T) {
	want := models.PointForecast{Expected: 120.5, Upper: 131.2}
	h := NewHandle(predictorFunc(func(ctx context.Context, f models.DateFeatures) (models.PointForecast, error) {
		return want, nil
	}), "test", "v1", time.Second)

	require.True(t, h.Available())
	got, err := h.Predict(context.Background(), models.DateFeatures{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, Info{Source: "test", Version: "v1", Available: true}, h.Info())
}

func TestHandle_Timeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	h := NewHandle(predictorFunc(func(ctx context.Context, f models.DateFeatures) (models.PointForecast, error) {
		<-release // ignores ctx on purpose
		return models.PointForecast{}, nil
	}), "slow", "", 20*time.Millisecond)

	start := time.Now()
	_, err := h.Predict(context.Background(), models.DateFeatures{})
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestHandle_PredictorDeadlineIsTimeout(t *testing.T) {
	h := NewHandle(predictorFunc(func(ctx context.Context, f models.DateFeatures) (models.PointForecast, error) {
		<-ctx.Done()
		return models.PointForecast{}, ctx.Err()
	}), "ctx-aware", "", 10*time.Millisecond)

	_, err := h.Predict(context.Background(), models.DateFeatures{})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestHandle_PredictorError(t *testing.T) {
	boom := errors.New("boom")
	h := NewHandle(predictorFunc(func(ctx context.Context, f models.DateFeatures) (models.PointForecast, error) {
		return models.PointForecast{}, boom
	}), "err", "", time.Second)

	_, err := h.Predict(context.Background(), models.DateFeatures{})
	assert.ErrorIs(t, err, boom)
}

func TestLoad_MissingArtifactDegrades(t *testing.T) {
	h := Load(context.Background(), LoadOptions{
		Path:    filepath.Join(t.TempDir(), "absent.json"),
		Timeout: time.Second,
	}, logger.Nop())
	require.NotNil(t, h)
	assert.False(t, h.Available())
	assert.NotEmpty(t, h.Info().LoadError)
}

func TestLoad_Artifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"origin": "2024-01-01",
		"trend": {"intercept": 100, "slope_per_day": 0},
		"weekly": [0, 0, 0, 0, 0, 0, 0],
		"yearly": {"cos": [], "sin": []},
		"holiday_effect": 0,
		"upper_margin": 1,
		"margin_growth_per_day": 0
	}`), 0o600))

	h := Load(context.Background(), LoadOptions{Path: path, Timeout: time.Second}, nil)
	require.True(t, h.Available())
	assert.Equal(t, "2024-01-01", h.Info().Version)
}
