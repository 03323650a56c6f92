package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/alchemorsel-v2/scaler/internal/model"
	"github.com/pageza/alchemorsel-v2/scaler/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// CreateRecipe mocks the CreateRecipe method
func (m *MockRecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// GetRecipe mocks the GetRecipe method
func (m *MockRecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// UpdateRecipe mocks the UpdateRecipe method
func (m *MockRecipeService) UpdateRecipe(ctx context.Context, id, userID uuid.UUID, recipe *model.Recipe) (*model.Recipe, error) {
	args := m.Called(ctx, id, userID, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// DeleteRecipe mocks the DeleteRecipe method
func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeService) ListRecipes(ctx context.Context, userID *uuid.UUID) ([]*model.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Recipe), args.Error(1)
}

// ScaleRecipe mocks the ScaleRecipe method
func (m *MockRecipeService) ScaleRecipe(ctx context.Context, id uuid.UUID, factor float64) (*model.ScaledRecipe, error) {
	args := m.Called(ctx, id, factor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScaledRecipe), args.Error(1)
}

// MockExportService is a mock implementation of the export service
type MockExportService struct {
	mock.Mock
}

// ShoppingListXLSX mocks the ShoppingListXLSX method
func (m *MockExportService) ShoppingListXLSX(ctx context.Context, recipe *model.ScaledRecipe) ([]byte, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// UploadShoppingList mocks the UploadShoppingList method
func (m *MockExportService) UploadShoppingList(ctx context.Context, recipe *model.ScaledRecipe) (*types.ExportResponse, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ExportResponse), args.Error(1)
}
