package handlers

import (
	"bed_forecast/internal/logger"
	"bed_forecast/internal/metrics"
	"bed_forecast/internal/service"

	"github.com/gin-gonic/gin"

	_ "bed_forecast/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services     *service.Service
	log          *logger.Logger
	metrics      *metrics.Metrics
	strictStatus bool
}

// Options tunes the HTTP layer.
type Options struct {
	// StrictStatus replaces the always-200 error convention with 400/503/500/504.
	StrictStatus bool
	Metrics      *metrics.Metrics
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	return &Handler{
		services:     services,
		log:          log,
		metrics:      opts.Metrics,
		strictStatus: opts.StrictStatus,
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.metrics.Middleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(h.metrics.Handler()))

	router.GET("/", h.root)
	router.GET("/health", h.health)

	h.registerForecastRoutes(router)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerForecastRoutes(r *gin.Engine) {
	predict := r.Group("/predict")
	{
		predict.GET("", h.predict)
		predict.GET("/chart", h.predictChart)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
		logs.GET("/", h.getLogs)
	}
}
