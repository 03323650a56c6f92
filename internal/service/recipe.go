package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/alchemorsel-v2/scaler/internal/model"
	"github.com/pageza/alchemorsel-v2/scaler/internal/quantity"
)

// MaxScaleFactor bounds batch scaling requests
const MaxScaleFactor = 100

// RecipeService handles recipe operations
type RecipeService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		db:     db,
		logger: logger,
	}
}

// CreateRecipe creates a new recipe together with its ingredients
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	orderIngredients(recipe.Ingredients)
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	s.logger.Info("recipe created",
		zap.String("recipe_id", recipe.ID.String()),
		zap.Int("ingredients", len(recipe.Ingredients)),
	)
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID with its ingredients in order
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// UpdateRecipe replaces a recipe's fields and ingredients. Only the owner may update.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id, userID uuid.UUID, recipe *model.Recipe) (*model.Recipe, error) {
	existing, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	orderIngredients(recipe.Ingredients)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Recipe{}).Where("id = ?", id).Select("Name", "Description", "Servings", "Instructions").Updates(&model.Recipe{
			Name:         recipe.Name,
			Description:  recipe.Description,
			Servings:     recipe.Servings,
			Instructions: recipe.Instructions,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.Ingredient{}).Error; err != nil {
			return err
		}
		for i := range recipe.Ingredients {
			recipe.Ingredients[i].ID = uuid.Nil
			recipe.Ingredients[i].RecipeID = id
		}
		if len(recipe.Ingredients) > 0 {
			return tx.Create(&recipe.Ingredients).Error
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	s.logger.Info("recipe updated", zap.String("recipe_id", id.String()))
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe deletes a recipe. Only the owner may delete.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error {
	existing, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrForbidden
	}

	if err := s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	s.logger.Info("recipe deleted", zap.String("recipe_id", id.String()))
	return nil
}

// ListRecipes lists recipes for a user or all users if userID is nil
func (s *RecipeService) ListRecipes(ctx context.Context, userID *uuid.UUID) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	query := s.db.WithContext(ctx).Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if err := query.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	// Convert to []*model.Recipe
	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// ScaleRecipe loads a recipe and multiplies it by factor
func (s *RecipeService) ScaleRecipe(ctx context.Context, id uuid.UUID, factor float64) (*model.ScaledRecipe, error) {
	if err := ValidateFactor(factor); err != nil {
		return nil, err
	}
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("scaling recipe", zap.String("recipe_id", id.String()), zap.Float64("factor", factor))

	scaled := BuildScaledRecipe(recipe, factor)
	for _, ing := range scaled.Ingredients {
		if err := CheckScaledQuantity(ing.Quantity); err != nil {
			return nil, fmt.Errorf("%w: %s × %v", err, ing.Name, factor)
		}
	}
	return scaled, nil
}

// CheckScaledQuantity rejects products that overflowed to ±Inf, which
// cannot be represented in a JSON response.
func CheckScaledQuantity(q *float64) error {
	if q != nil && math.IsInf(*q, 0) {
		return ErrQuantityOutOfRange
	}
	return nil
}

// BuildScaledRecipe multiplies every ingredient quantity and the servings
// text by factor. Quantities stay exact; only the Display and Line fields
// are approximated to kitchen fractions.
func BuildScaledRecipe(recipe *model.Recipe, factor float64) *model.ScaledRecipe {
	scaled := &model.ScaledRecipe{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Description: recipe.Description,
		Factor:      factor,
		Servings:    quantity.ScaleText(recipe.Servings, factor),
		Ingredients: make([]model.ScaledIngredient, 0, len(recipe.Ingredients)),
	}

	for _, ing := range recipe.Ingredients {
		var amount *float64
		if ing.Quantity != nil {
			v := quantity.Scale(*ing.Quantity, factor)
			amount = &v
		}
		display := quantity.FormatOptional(amount)
		scaled.Ingredients = append(scaled.Ingredients, model.ScaledIngredient{
			Quantity: amount,
			Display:  display,
			Unit:     ing.Unit,
			Name:     ing.Name,
			Note:     ing.Note,
			Line:     IngredientLine(display, ing.Unit, ing.Name, ing.Note),
		})
	}
	return scaled
}

// IngredientLine joins the non-empty parts of an ingredient for display,
// e.g. "1 ½ cups flour, sifted".
func IngredientLine(display, unit, name, note string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{display, unit, name} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	line := strings.Join(parts, " ")
	if note = strings.TrimSpace(note); note != "" {
		line += ", " + note
	}
	return line
}

// ValidateFactor accepts finite factors in (0, MaxScaleFactor]
func ValidateFactor(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 || factor > MaxScaleFactor {
		return fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}
	return nil
}

// FactorForServings derives the factor that turns servings text such as
// "Serves 4" into target servings, using the first number in the text.
func FactorForServings(servings string, target float64) (float64, error) {
	base, ok := quantity.LeadingNumber(servings)
	if !ok || base <= 0 {
		return 0, fmt.Errorf("%w: servings %q has no count to scale from", ErrInvalidFactor, servings)
	}
	factor := target / base
	if err := ValidateFactor(factor); err != nil {
		return 0, err
	}
	return factor, nil
}

func orderIngredients(ingredients []model.Ingredient) {
	for i := range ingredients {
		ingredients[i].Position = i
	}
}
