package model

import (
	"context"
	"time"

	"bed_forecast/internal/logger"
)

// LoadOptions selects the model backend. RemoteURL wins over Path when set.
type LoadOptions struct {
	Path      string
	RemoteURL string
	Timeout   time.Duration
}

// Load builds the process-wide handle. It never fails: a load error is logged
// and turned into an unavailable handle so the service keeps running degraded.
func Load(ctx context.Context, opts LoadOptions, log *logger.Logger) *Handle {
	if opts.RemoteURL != "" {
		remote := NewRemoteModel(RemoteOptions{BaseURL: opts.RemoteURL, Timeout: opts.Timeout})
		version, err := remote.Probe(ctx)
		if err != nil {
			logLoadFailure(log, opts.RemoteURL, err)
			return Unavailable(opts.RemoteURL, err)
		}
		logLoaded(log, opts.RemoteURL, version)
		return NewHandle(remote, opts.RemoteURL, version, opts.Timeout)
	}

	artifact, err := LoadArtifact(opts.Path)
	if err != nil {
		logLoadFailure(log, opts.Path, err)
		return Unavailable(opts.Path, err)
	}
	logLoaded(log, opts.Path, artifact.Version())
	return NewHandle(artifact, opts.Path, artifact.Version(), opts.Timeout)
}

func logLoaded(log *logger.Logger, source, version string) {
	if log != nil {
		log.Infow("model_loaded", "source", source, "version", version)
	}
}

func logLoadFailure(log *logger.Logger, source string, err error) {
	if log != nil {
		log.Errorw("model_load_failed", "source", source, "err", err)
	}
}
