package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/alchemorsel-v2/scaler/internal/model"
	"github.com/pageza/alchemorsel-v2/scaler/internal/types"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, id, userID uuid.UUID, recipe *model.Recipe) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error
	ListRecipes(ctx context.Context, userID *uuid.UUID) ([]*model.Recipe, error)
	ScaleRecipe(ctx context.Context, id uuid.UUID, factor float64) (*model.ScaledRecipe, error)
}

// IExportService defines the interface for shopping list exports
type IExportService interface {
	ShoppingListXLSX(ctx context.Context, recipe *model.ScaledRecipe) ([]byte, error)
	UploadShoppingList(ctx context.Context, recipe *model.ScaledRecipe) (*types.ExportResponse, error)
}

// ITokenService validates bearer tokens
type ITokenService interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}
