package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-v2/scaler/internal/middleware"
	"github.com/pageza/alchemorsel-v2/scaler/internal/service"
)

// Services are the dependencies of the HTTP handlers
type Services struct {
	Recipes service.IRecipeService
	Exports service.IExportService
	Tokens  middleware.TokenValidator
	// Limiter guards scaling and export routes; nil disables rate limiting
	Limiter *middleware.RateLimiter
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, svc Services, logger *zap.Logger) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	var limiter gin.HandlerFunc
	if svc.Limiter != nil {
		limiter = svc.Limiter.RateLimitMiddleware()
	} else {
		logger.Warn("rate limiting disabled")
	}

	quantityHandler := NewQuantityHandler(logger)
	recipeHandler := NewRecipeHandler(svc.Recipes, svc.Exports, svc.Tokens, limiter, logger)

	v1 := router.Group("/api/v1")
	quantityHandler.RegisterRoutes(v1, limiter)
	recipeHandler.RegisterRoutes(v1)
}
