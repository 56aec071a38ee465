package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/freshkeeper/freshkeeper-api/internal/models"
	"github.com/freshkeeper/freshkeeper-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RecipeController handles recipe suggestion requests
type RecipeController interface {
	// GetRecipeSuggestions suggests recipes for ingredients nearing expiry
	GetRecipeSuggestions(c *gin.Context)
}

type recipeController struct {
	ingredients services.IngredientService
	recipes     services.RecipeService
}

// NewRecipeController creates a new instance of RecipeController
func NewRecipeController(ingredients services.IngredientService, recipes services.RecipeService) *recipeController {
	return &recipeController{ingredients: ingredients, recipes: recipes}
}

// GetRecipeSuggestions godoc
// @Summary Suggest recipes for expiring ingredients
// @Description Look up recipes from the external provider using every ingredient expiring within the given window
// @Tags recipes
// @Produce json
// @Param days query int false "Window in days" default(7)
// @Success 200 {object} models.RecipeSuggestionsResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/recipe-suggestions [get]
func (c *recipeController) GetRecipeSuggestions(ctx *gin.Context) {
	days, err := strconv.Atoi(ctx.DefaultQuery("days", "7"))
	if err != nil {
		days = 7
	}

	expiring, err := c.ingredients.ListExpiringWithin(days)
	if err != nil {
		log.WithError(err).Error("Failed to list expiring ingredients for suggestions")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recipe suggestions"})
		return
	}

	if len(expiring) == 0 {
		ctx.JSON(http.StatusOK, models.RecipeSuggestionsResponse{
			Message:             "No ingredients expiring soon",
			Recipes:             []models.RecipeSuggestion{},
			ExpiringIngredients: []string{},
		})
		return
	}

	names := make([]string, 0, len(expiring))
	for _, ingredient := range expiring {
		names = append(names, ingredient.Name)
	}

	recipes, err := c.recipes.Suggest(names, 0)
	if err != nil && !errors.Is(err, services.ErrNoRecipesFound) {
		log.WithError(err).Error("Recipe aggregation failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"code":                providerErrorCode(err),
			"error":               err.Error(),
			"expiringIngredients": names,
			"recipes":             []models.RecipeSuggestion{},
		})
		return
	}

	if len(recipes) == 0 {
		ctx.JSON(http.StatusOK, models.RecipeSuggestionsResponse{
			Message:             "No recipes found with your expiring ingredients. Try adding more common ingredients to your pantry.",
			ExpiringIngredients: names,
			Recipes:             []models.RecipeSuggestion{},
		})
		return
	}

	// The aggregator returns provider order; the presentation contract is
	// most-matched-first.
	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].UsedIngredientCount > recipes[j].UsedIngredientCount
	})

	ctx.JSON(http.StatusOK, models.RecipeSuggestionsResponse{
		ExpiringIngredients: names,
		Recipes:             recipes,
		RecipeCount:         len(recipes),
		Message:             fmt.Sprintf("Found %d recipes using your expiring ingredients!", len(recipes)),
	})
}

// providerErrorCode maps an aggregator failure onto the error taxonomy
func providerErrorCode(err error) string {
	if errors.Is(err, services.ErrAPIKeyNotConfigured) {
		return models.ErrProviderNotConfigured
	}
	return models.ErrProviderUnavailable
}
