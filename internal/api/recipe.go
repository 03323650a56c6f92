package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-v2/scaler/internal/middleware"
	"github.com/pageza/alchemorsel-v2/scaler/internal/model"
	"github.com/pageza/alchemorsel-v2/scaler/internal/service"
	"github.com/pageza/alchemorsel-v2/scaler/internal/types"
)

// RecipeHandler serves stored recipes and their scaled views
type RecipeHandler struct {
	recipeService service.IRecipeService
	exportService service.IExportService
	auth          middleware.TokenValidator
	limiter       gin.HandlerFunc
	logger        *zap.Logger
}

// NewRecipeHandler creates a RecipeHandler. limiter may be nil.
func NewRecipeHandler(
	recipeService service.IRecipeService,
	exportService service.IExportService,
	auth middleware.TokenValidator,
	limiter gin.HandlerFunc,
	logger *zap.Logger,
) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		exportService: exportService,
		auth:          auth,
		limiter:       limiter,
		logger:        logger,
	}
}

// RegisterRoutes registers the recipe routes on router
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	authRequired := middleware.AuthMiddleware(h.auth)
	export := append([]gin.HandlerFunc{authRequired}, chain(h.limiter, h.ExportShoppingList)...)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/scaled", chain(h.limiter, h.GetScaledRecipe)...)
		recipes.GET("/:id/shopping-list.xlsx", chain(h.limiter, h.DownloadShoppingList)...)
		recipes.POST("/:id/shopping-list/export", export...)
		recipes.POST("", authRequired, h.CreateRecipe)
		recipes.PUT("/:id", authRequired, h.UpdateRecipe)
		recipes.DELETE("/:id", authRequired, h.DeleteRecipe)
	}
}

// ListRecipes lists recipes, optionally only those of ?user_id=
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var userID *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		userID = &id
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe returns a single recipe with its ingredients
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// GetScaledRecipe returns the recipe multiplied by ?factor= (default 1),
// or by the factor that yields ?servings= servings.
func (h *RecipeHandler) GetScaledRecipe(c *gin.Context) {
	scaled, ok := h.scaledRecipe(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": scaled})
}

// DownloadShoppingList streams the scaled ingredient list as XLSX
func (h *RecipeHandler) DownloadShoppingList(c *gin.Context) {
	scaled, ok := h.scaledRecipe(c)
	if !ok {
		return
	}

	data, err := h.exportService.ShoppingListXLSX(c.Request.Context(), scaled)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "shopping-list-"+scaled.ID.String()+".xlsx"))
	c.Data(http.StatusOK, service.XLSXContentType, data)
}

// ExportShoppingList uploads the XLSX shopping list and returns a download link
func (h *RecipeHandler) ExportShoppingList(c *gin.Context) {
	scaled, ok := h.scaledRecipe(c)
	if !ok {
		return
	}

	export, err := h.exportService.UploadShoppingList(c.Request.Context(), scaled)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, export)
}

// CreateRecipe stores a new recipe owned by the authenticated user
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), toRecipe(&req, userID))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

// UpdateRecipe replaces a recipe's fields and ingredient list
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, userID, toRecipe(&req, userID))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// DeleteRecipe soft-deletes a recipe owned by the authenticated user
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id, userID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
		"id":      id,
	})
}

func (h *RecipeHandler) scaledRecipe(c *gin.Context) (*model.ScaledRecipe, bool) {
	id, ok := recipeID(c)
	if !ok {
		return nil, false
	}

	factor, err := h.factor(c, id)
	if err != nil {
		writeError(c, h.logger, err)
		return nil, false
	}

	scaled, err := h.recipeService.ScaleRecipe(c.Request.Context(), id, factor)
	if err != nil {
		writeError(c, h.logger, err)
		return nil, false
	}
	return scaled, true
}

// factor resolves the scale factor from ?servings= or ?factor=
func (h *RecipeHandler) factor(c *gin.Context, id uuid.UUID) (float64, error) {
	if raw := c.Query("servings"); raw != "" {
		target, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: servings %q", service.ErrInvalidFactor, raw)
		}
		recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
		if err != nil {
			return 0, err
		}
		return service.FactorForServings(recipe.Servings, target)
	}

	factor, err := strconv.ParseFloat(c.DefaultQuery("factor", "1"), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", service.ErrInvalidFactor, c.Query("factor"))
	}
	return factor, service.ValidateFactor(factor)
}

func recipeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return uuid.Nil, false
	}
	return id, true
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextUserID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

func toRecipe(req *types.CreateRecipeRequest, userID uuid.UUID) *model.Recipe {
	recipe := &model.Recipe{
		Name:         req.Name,
		Description:  req.Description,
		Servings:     req.Servings,
		Instructions: model.JSONBStringArray(req.Instructions),
		UserID:       userID,
		Ingredients:  make([]model.Ingredient, 0, len(req.Ingredients)),
	}
	if recipe.Instructions == nil {
		recipe.Instructions = model.JSONBStringArray{}
	}
	for _, ing := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, model.Ingredient{
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Name:     ing.Name,
			Note:     ing.Note,
		})
	}
	return recipe
}
