package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bed_forecast/internal/config"
	"bed_forecast/internal/handlers"
	"bed_forecast/internal/logger"
	"bed_forecast/internal/metrics"
	"bed_forecast/internal/model"
	"bed_forecast/internal/models"
	"bed_forecast/internal/repository"
	"bed_forecast/internal/repository/db"
	"bed_forecast/internal/server"
	"bed_forecast/internal/service"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// open DB
	sqlDB, err := openDB(cfg.DB, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	m := metrics.New()

	// the model is loaded once; failure leaves the service running degraded
	handle := model.Load(ctx, model.LoadOptions{
		Path:      cfg.Model.Path,
		RemoteURL: cfg.Model.RemoteURL,
		Timeout:   cfg.Model.Timeout,
	}, log.Component("model"))

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.Options{
		Model:   handle,
		Policy:  policyFromConfig(cfg),
		Cache:   openCache(ctx, cfg.Redis, log),
		Metrics: m,
		Log:     log,
	})
	services.RecordModelState(ctx)

	apiHandler := handlers.NewHandler(services, log.Component("http"), handlers.Options{
		StrictStatus: cfg.HTTP.StrictStatus,
		Metrics:      m,
	})

	// start HTTP server
	srv := server.New(cfg.HTTP.Addr(), server.WithCORS(cfg.CORS.AllowedOrigins, apiHandler.InitRoutes()))
	runHTTPServer(srv, cfg, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func policyFromConfig(cfg *config.Config) service.Policy {
	return service.Policy{
		Capacity: models.Capacity{
			TotalBeds:         cfg.Capacity.TotalBeds,
			CriticalThreshold: cfg.Forecast.CriticalThreshold,
		},
		HorizonDays: cfg.Forecast.HorizonDays,
		RestDay:     cfg.Forecast.RestWeekday(),
	}
}

// openDB initializes the SQLite journal database.
func openDB(cfg config.DBConfig, log *logger.Logger) (*sql.DB, error) {
	path := cfg.Path
	if path == "" {
		log.Infow("db.path not set in config; using default file", "default", config.DefaultDBPath)
		path = config.DefaultDBPath
	}
	return db.InitDB(path)
}

// openCache connects the optional redis forecast cache. Any failure disables caching.
func openCache(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) service.ForecastCache {
	if cfg.Addr == "" {
		log.Infow("forecast cache disabled", "reason", "redis.addr not set")
		return nil
	}
	client, err := repository.NewRedisClient(ctx, repository.RedisOptions{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		log.Warnw("forecast cache disabled", "err", err)
		return nil
	}
	log.Infow("forecast cache enabled", "addr", cfg.Addr, "ttl", cfg.TTL)
	return repository.NewRedisForecastCache(client, cfg.TTL)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, cfg *config.Config, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "addr", cfg.HTTP.Addr(), "strict_status", cfg.HTTP.StrictStatus)
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
