package handlers

import (
	"net/http"
	"time"

	_ "exercise_tracker/docs" // registers the swagger document
	"exercise_tracker/internal/logger"
	"exercise_tracker/internal/metrics"
	"exercise_tracker/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     options
}

type options struct {
	legacySoftErrors bool
	corsOrigins      []string
}

// Option customizes a Handler.
type Option func(*options)

// WithLegacySoftErrors answers not-found and validation failures with 200,
// matching clients written against the original tracker API.
func WithLegacySoftErrors(on bool) Option {
	return func(o *options) { o.legacySoftErrors = on }
}

// WithCORSOrigins restricts CORS to origins. Empty or "*" allows all.
func WithCORSOrigins(origins []string) Option {
	return func(o *options) { o.corsOrigins = origins }
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{services: services, log: log}
	for _, opt := range opts {
		opt(&h.opts)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestLogger, metrics.Middleware(), cors.New(h.corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// System endpoints
	router.GET("/", h.root)
	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	users := r.Group("/api/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.POST("/:id/exercises", h.addExercise)
		users.GET("/:id/logs", h.getLogs)
	}
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range h.opts.corsOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(h.opts.corsOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = h.opts.corsOrigins
	return cfg
}
