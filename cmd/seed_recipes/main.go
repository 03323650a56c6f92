package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"log"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-v2/scaler/config"
	"github.com/pageza/alchemorsel-v2/scaler/internal/database"
	"github.com/pageza/alchemorsel-v2/scaler/internal/logging"
	"github.com/pageza/alchemorsel-v2/scaler/internal/model"
	"github.com/pageza/alchemorsel-v2/scaler/internal/service"
)

//go:embed recipes.json
var sampleRecipes []byte

type IngredientData struct {
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
	Name     string   `json:"name"`
	Note     string   `json:"note"`
}

type RecipeData struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Servings     string           `json:"servings"`
	Ingredients  []IngredientData `json:"ingredients"`
	Instructions []string         `json:"instructions"`
}

func main() {
	owner := flag.String("user", "", "owner user ID for the seeded recipes (random when empty)")
	flag.Parse()

	userID := uuid.New()
	if *owner != "" {
		id, err := uuid.Parse(*owner)
		if err != nil {
			log.Fatalf("Invalid user ID %q: %v", *owner, err)
		}
		userID = id
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var recipes []RecipeData
	if err := json.Unmarshal(sampleRecipes, &recipes); err != nil {
		logger.Fatal("failed to parse sample recipes", zap.Error(err))
	}

	ctx := context.Background()
	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(ctx, db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	recipeService := service.NewRecipeService(db, logger)
	for _, data := range recipes {
		if _, err := recipeService.CreateRecipe(ctx, toRecipe(data, userID)); err != nil {
			logger.Error("failed to seed recipe", zap.String("name", data.Name), zap.Error(err))
			continue
		}
	}
	logger.Info("seeding complete", zap.Int("recipes", len(recipes)), zap.String("user_id", userID.String()))
}

func toRecipe(data RecipeData, userID uuid.UUID) *model.Recipe {
	recipe := &model.Recipe{
		Name:         data.Name,
		Description:  data.Description,
		Servings:     data.Servings,
		Instructions: model.JSONBStringArray(data.Instructions),
		UserID:       userID,
	}
	for _, ing := range data.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, model.Ingredient{
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Name:     ing.Name,
			Note:     ing.Note,
		})
	}
	return recipe
}
