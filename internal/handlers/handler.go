package handlers

import (
	"embed"
	"fmt"
	"html/template"

	"shelldon/internal/config"
	"shelldon/internal/logger"
	"shelldon/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	limiter  *rate.Limiter
}

// Option customizes a Handler.
type Option func(*Handler)

// WithRateLimit throttles the API and auth routes. Zero RPS disables it.
func WithRateLimit(cfg config.RateLimitConfig) Option {
	return func(h *Handler) {
		if cfg.RPS <= 0 {
			h.limiter = nil
			return
		}
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		h.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), burst)
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(pageTemplates())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	// Server-rendered page and its chart images
	router.GET("/", h.page)
	h.registerChartRoutes(router)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Live dashboard stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func pageTemplates() *template.Template {
	funcs := template.FuncMap{
		"pointTime": service.PointTimeLabel,
		"f1":        func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"f2":        func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"pct":       func(fraction float64) string { return fmt.Sprintf("%.1f", fraction*100) },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))
}

func (h *Handler) registerChartRoutes(r *gin.Engine) {
	charts := r.Group("/charts")
	{
		charts.GET("/temperature.svg", h.temperatureChart)
		charts.GET("/water.svg", h.waterChart)
	}
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth", h.rateLimitMiddleware)
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

// registerAPIRoutes mounts the versioned API. Reads are public; writes need
// a caretaker token.
func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.rateLimitMiddleware)
	{
		api.GET("/dashboard", h.getDashboard)
		h.registerHistoryRoutes(api)
		h.registerReadingRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerHistoryRoutes(api *gin.RouterGroup) {
	history := api.Group("/history")
	{
		history.GET("/temperature", h.getTemperatureHistory)
		history.GET("/water", h.getWaterHistory)
	}
}

func (h *Handler) registerReadingRoutes(api *gin.RouterGroup) {
	readings := api.Group("/readings")
	{
		readings.GET("/temperature", h.listTemperatureReadings)
		readings.GET("/water", h.listWaterReadings)
		// Body example: {"timestamp":"2026-02-10T16:46:00-06:00","value":71.6}
		readings.POST("/temperature", h.userIdMiddleware, h.recordTemperature)
		// Body example: {"ph":7.4,"ammonia":0.01}
		readings.POST("/water", h.userIdMiddleware, h.recordWater)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
		logs.POST("", h.userIdMiddleware, h.postLog)
	}
}
