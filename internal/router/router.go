package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-v2/scaler/internal/api"
	"github.com/pageza/alchemorsel-v2/scaler/internal/middleware"
)

// Options configures the router
type Options struct {
	Services       api.Services
	AllowedOrigins []string
	// Registry receives the HTTP metrics; nil disables /metrics
	Registry *prometheus.Registry
	Logger   *zap.Logger
}

// SetupRouter configures the application routes
func SetupRouter(opts Options) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(middleware.ErrorHandler(opts.Logger))
	router.Use(middleware.CORS(opts.AllowedOrigins...))

	if opts.Registry != nil {
		metrics, err := middleware.NewMetrics(opts.Registry)
		if err != nil {
			return nil, err
		}
		router.Use(metrics.Middleware())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	api.RegisterRoutes(router, opts.Services, opts.Logger)
	return router, nil
}
