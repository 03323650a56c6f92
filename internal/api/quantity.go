package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-v2/scaler/internal/quantity"
	"github.com/pageza/alchemorsel-v2/scaler/internal/service"
	"github.com/pageza/alchemorsel-v2/scaler/internal/types"
)

// QuantityHandler exposes the quantity engine for clients that only need
// display strings, without a stored recipe.
type QuantityHandler struct {
	logger *zap.Logger
}

// NewQuantityHandler creates a QuantityHandler
func NewQuantityHandler(logger *zap.Logger) *QuantityHandler {
	return &QuantityHandler{logger: logger}
}

// RegisterRoutes registers the quantity routes on router
func (h *QuantityHandler) RegisterRoutes(router *gin.RouterGroup, limiter gin.HandlerFunc) {
	router.POST("/quantities/format", h.FormatQuantities)
	router.POST("/quantities/scale", h.ScaleQuantity)
	router.POST("/servings/scale", chain(limiter, h.ScaleServings)...)
}

// FormatQuantities renders each quantity as a mixed number with a Unicode
// fraction. Null entries come back as "".
func (h *QuantityHandler) FormatQuantities(c *gin.Context) {
	var req types.FormatQuantitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	formatted := make([]string, len(req.Quantities))
	for i, q := range req.Quantities {
		formatted[i] = quantity.FormatOptional(q)
	}
	c.JSON(http.StatusOK, types.FormatQuantitiesResponse{Formatted: formatted})
}

// ScaleQuantity multiplies a quantity by a factor. A missing operand yields 0;
// a product beyond the float64 range is rejected with 400.
func (h *QuantityHandler) ScaleQuantity(c *gin.Context) {
	var req types.ScaleQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	scaled := quantity.ScaleOptional(req.Quantity, req.Factor)
	if err := service.CheckScaledQuantity(&scaled); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, types.ScaleQuantityResponse{
		Quantity: scaled,
		Display:  quantity.Format(scaled),
	})
}

// ScaleServings rewrites every number in a servings description
func (h *QuantityHandler) ScaleServings(c *gin.Context) {
	var req types.ScaleServingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := service.ValidateFactor(req.Factor); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, types.ScaleServingsResponse{
		Text: quantity.ScaleTextOptional(req.Text, req.Factor),
	})
}

// chain prepends the optional middleware to handler
func chain(middleware gin.HandlerFunc, handler ...gin.HandlerFunc) []gin.HandlerFunc {
	if middleware == nil {
		return handler
	}
	return append([]gin.HandlerFunc{middleware}, handler...)
}
