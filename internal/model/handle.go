package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bed_forecast/internal/models"
)

var (
	// ErrUnavailable is returned for every prediction when the model failed to load.
	ErrUnavailable = errors.New("forecast model is not loaded")
	// ErrTimeout is returned when a single inference exceeds the configured timeout.
	ErrTimeout = errors.New("model inference timed out")
)

// Predictor is a loaded forecasting model. Implementations must be safe for
// concurrent use and free of side effects.
type Predictor interface {
	Predict(ctx context.Context, f models.DateFeatures) (models.PointForecast, error)
}

// Info describes where the handle's model came from and whether it loaded.
type Info struct {
	Source    string `json:"source"`
	Version   string `json:"version,omitempty"`
	Available bool   `json:"available"`
	LoadError string `json:"load_error,omitempty"`
}

// Handle owns the single model instance of the process. It is built once at
// startup and never mutated afterwards.
type Handle struct {
	predictor Predictor
	info      Info
	timeout   time.Duration
}

// NewHandle wraps a loaded predictor.
func NewHandle(p Predictor, source, version string, timeout time.Duration) *Handle {
	return &Handle{
		predictor: p,
		info:      Info{Source: source, Version: version, Available: p != nil},
		timeout:   timeout,
	}
}

// Unavailable returns a handle in the permanent unloaded state.
func Unavailable(source string, loadErr error) *Handle {
	info := Info{Source: source}
	if loadErr != nil {
		info.LoadError = loadErr.Error()
	}
	return &Handle{info: info}
}

// Available reports whether predictions can be served.
func (h *Handle) Available() bool {
	return h != nil && h.predictor != nil
}

// Info returns a copy of the load outcome.
func (h *Handle) Info() Info {
	if h == nil {
		return Info{}
	}
	return h.info
}

// Predict runs one inference bounded by the handle's timeout.
func (h *Handle) Predict(ctx context.Context, f models.DateFeatures) (models.PointForecast, error) {
	if !h.Available() {
		return models.PointForecast{}, ErrUnavailable
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	type result struct {
		pf  models.PointForecast
		err error
	}
	done := make(chan result, 1)
	go func() {
		pf, err := h.predictor.Predict(ctx, f)
		done <- result{pf: pf, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && errors.Is(r.err, context.DeadlineExceeded) {
			return models.PointForecast{}, fmt.Errorf("%w: %v", ErrTimeout, r.err)
		}
		return r.pf, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return models.PointForecast{}, fmt.Errorf("%w after %s", ErrTimeout, h.timeout)
		}
		return models.PointForecast{}, ctx.Err()
	}
}
