package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bed_forecast/internal/models"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

// RemoteOptions configures the HTTP inference client.
type RemoteOptions struct {
	BaseURL         string
	Timeout         time.Duration // per HTTP attempt
	RequestsPerSec  int
	InitialInterval time.Duration // first backoff delay
	MaxElapsed      time.Duration // total retry budget for Probe
}

// RemoteModel serves predictions from an external inference endpoint:
// POST {base}/predict {"ds":"YYYY-MM-DD","is_holiday":0|1} -> {"yhat":..,"yhat_upper":..}.
type RemoteModel struct {
	baseURL         string
	client          *http.Client
	limiter         *rate.Limiter
	initialInterval time.Duration
	maxElapsed      time.Duration
}

type remoteRequest struct {
	DS        string `json:"ds"`
	IsHoliday int    `json:"is_holiday"`
}

type remoteHealth struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// remoteForecast keeps both fields as pointers so a missing or null value is detectable.
type remoteForecast struct {
	Yhat      *float64 `json:"yhat"`
	YhatUpper *float64 `json:"yhat_upper"`
}

const healthStatusOK = "ok"

var (
	// ErrMalformedResponse marks a 200 answer that lacks yhat or yhat_upper.
	ErrMalformedResponse = errors.New("inference response is missing yhat or yhat_upper")
	// ErrNotReady marks a health answer whose status is not "ok".
	ErrNotReady = errors.New("inference endpoint is not ready")
)

// StatusError reports a non-200 answer from the inference endpoint.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return "inference endpoint returned " + http.StatusText(e.StatusCode)
}

// NewRemoteModel creates a rate-limited client with default retry settings.
func NewRemoteModel(opts RemoteOptions) *RemoteModel {
	if opts.Timeout == 0 {
		opts.Timeout = 2 * time.Second
	}
	if opts.RequestsPerSec == 0 {
		opts.RequestsPerSec = 50
	}
	if opts.InitialInterval == 0 {
		opts.InitialInterval = 100 * time.Millisecond
	}
	if opts.MaxElapsed == 0 {
		opts.MaxElapsed = 10 * time.Second
	}
	return &RemoteModel{
		baseURL:         strings.TrimRight(opts.BaseURL, "/"),
		client:          &http.Client{Timeout: opts.Timeout},
		limiter:         rate.NewLimiter(rate.Limit(opts.RequestsPerSec), opts.RequestsPerSec),
		initialInterval: opts.InitialInterval,
		maxElapsed:      opts.MaxElapsed,
	}
}

func (m *RemoteModel) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = m.initialInterval
	b.MaxElapsedTime = m.maxElapsed
	return backoff.WithContext(b, ctx)
}

// Probe checks GET {base}/health, retrying with backoff until the status is "ok"
// (or absent), and returns the model version.
func (m *RemoteModel) Probe(ctx context.Context) (string, error) {
	var health remoteHealth
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/health", nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create health request: %w", err))
		}
		health = remoteHealth{}
		if err := m.doJSON(req, &health); err != nil {
			return err
		}
		if health.Status != "" && !strings.EqualFold(health.Status, healthStatusOK) {
			return fmt.Errorf("%w: status %q", ErrNotReady, health.Status)
		}
		return nil
	}
	if err := backoff.Retry(op, m.newBackOff(ctx)); err != nil {
		return "", fmt.Errorf("probe inference endpoint %s: %w", m.baseURL, err)
	}
	return health.Version, nil
}

// Predict requests a single day's forecast. Server errors are retried until ctx expires.
func (m *RemoteModel) Predict(ctx context.Context, f models.DateFeatures) (models.PointForecast, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return models.PointForecast{}, fmt.Errorf("rate limiter: %w", err)
	}
	body := remoteRequest{DS: f.TargetDate.Format(models.DateLayout)}
	if f.IsHoliday {
		body.IsHoliday = 1
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return models.PointForecast{}, fmt.Errorf("marshal inference request: %w", err)
	}

	var out remoteForecast
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/predict", bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create inference request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		out = remoteForecast{}
		if err := m.doJSON(req, &out); err != nil {
			return err
		}
		if out.Yhat == nil || out.YhatUpper == nil {
			return backoff.Permanent(ErrMalformedResponse)
		}
		return nil
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = m.initialInterval
	b.MaxElapsedTime = 0 // bounded by ctx
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return models.PointForecast{}, fmt.Errorf("remote inference for %s: %w", body.DS, err)
	}
	return models.PointForecast{Expected: *out.Yhat, Upper: *out.YhatUpper}, nil
}

// doJSON executes req and decodes a 200 JSON body into dst. 4xx answers are permanent.
func (m *RemoteModel) doJSON(req *http.Request, dst any) error {
	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(statusErr)
		}
		return statusErr
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return backoff.Permanent(fmt.Errorf("decode inference response: %w", err))
	}
	return nil
}
