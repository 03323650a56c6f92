package types

// IngredientInput is one ingredient line in a create or update request
type IngredientInput struct {
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
	Name     string   `json:"name" binding:"required"`
	Note     string   `json:"note"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Name         string            `json:"name" binding:"required,max=255"`
	Description  string            `json:"description"`
	Servings     string            `json:"servings" binding:"max=255"`
	Ingredients  []IngredientInput `json:"ingredients" binding:"required,dive"`
	Instructions []string          `json:"instructions"`
}

// UpdateRecipeRequest represents the request body for updating a recipe.
// The ingredient list replaces the stored one.
type UpdateRecipeRequest = CreateRecipeRequest

// FormatQuantitiesRequest asks for display strings of several quantities;
// null entries are allowed and format as "".
type FormatQuantitiesRequest struct {
	Quantities []*float64 `json:"quantities" binding:"required"`
}

// FormatQuantitiesResponse holds one display string per requested quantity
type FormatQuantitiesResponse struct {
	Formatted []string `json:"formatted"`
}

// ScaleQuantityRequest multiplies a single quantity
type ScaleQuantityRequest struct {
	Quantity *float64 `json:"quantity"`
	Factor   *float64 `json:"factor"`
}

// ScaleQuantityResponse returns the exact product and its display form
type ScaleQuantityResponse struct {
	Quantity float64 `json:"quantity"`
	Display  string  `json:"display"`
}

// ScaleServingsRequest rewrites a servings description
type ScaleServingsRequest struct {
	Text   *string `json:"text"`
	Factor float64 `json:"factor" binding:"required"`
}

// ScaleServingsResponse carries the rewritten description
type ScaleServingsResponse struct {
	Text string `json:"text"`
}

// ExportResponse points at an uploaded shopping list
type ExportResponse struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expires_in"`
}
