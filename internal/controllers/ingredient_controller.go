package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/freshkeeper/freshkeeper-api/internal/models"
	"github.com/freshkeeper/freshkeeper-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// IngredientController handles HTTP requests related to pantry ingredients
type IngredientController interface {
	// GetAllIngredients retrieves all ingredients with derived expiry status
	GetAllIngredients(c *gin.Context)
	// CreateIngredient creates a new ingredient
	CreateIngredient(c *gin.Context)
	// UpdateIngredient applies a partial update to an ingredient
	UpdateIngredient(c *gin.Context)
	// DeleteIngredient deletes an ingredient by its ID
	DeleteIngredient(c *gin.Context)
	// GetExpiringIngredients retrieves ingredients expiring soon
	GetExpiringIngredients(c *gin.Context)
	// GetStats summarizes the pantry by expiry bucket
	GetStats(c *gin.Context)
	// AddTestData seeds the fixed sample rows
	AddTestData(c *gin.Context)
	// ResetDatabase wipes the table after explicit confirmation
	ResetDatabase(c *gin.Context)
}

type ingredientController struct {
	service services.IngredientService
	now     func() time.Time
}

// NewIngredientController creates a new instance of IngredientController
func NewIngredientController(service services.IngredientService) *ingredientController {
	return &ingredientController{service: service, now: time.Now}
}

// NewIngredientControllerWithClock creates an IngredientController with an
// injected clock, used by tests to pin "today"
func NewIngredientControllerWithClock(service services.IngredientService, now func() time.Time) *ingredientController {
	return &ingredientController{service: service, now: now}
}

// GetAllIngredients godoc
// @Summary List all ingredients
// @Description Get every pantry ingredient ordered by expiry date, each with its day-offset and derived status
// @Tags ingredients
// @Produce json
// @Success 200 {array} models.IngredientStatus
// @Failure 500 {object} map[string]string
// @Router /api/ingredients [get]
func (c *ingredientController) GetAllIngredients(ctx *gin.Context) {
	ingredients, err := c.service.ListIngredients()
	if err != nil {
		log.WithError(err).Error("Failed to list ingredients")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to fetch ingredients"))
		return
	}

	today := c.now()
	result := make([]models.IngredientStatus, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, withStatus(ingredient, today))
	}
	ctx.JSON(http.StatusOK, result)
}

// CreateIngredient godoc
// @Summary Add an ingredient
// @Description Create a new pantry ingredient; name and expiryDate (YYYY-MM-DD) are required
// @Tags ingredients
// @Accept json
// @Produce json
// @Param ingredient body models.CreateIngredientRequest true "Ingredient"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/ingredients [post]
func (c *ingredientController) CreateIngredient(ctx *gin.Context) {
	var req models.CreateIngredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Name and expiryDate are required"))
		return
	}

	id, err := c.service.CreateIngredient(req)
	switch {
	case errors.Is(err, services.ErrNameRequired):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Name and expiryDate are required"))
	case errors.Is(err, services.ErrInvalidDate):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrIngredientInvalidData, "Invalid date format. Use YYYY-MM-DD"))
	case err != nil:
		log.WithError(err).Error("Failed to create ingredient")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to add ingredient"))
	default:
		log.WithField("ingredient_id", id).Debug("Ingredient added")
		ctx.JSON(http.StatusCreated, gin.H{"message": "Ingredient added successfully", "id": id})
	}
}

// UpdateIngredient godoc
// @Summary Update an ingredient
// @Description Partially update an ingredient; any subset of name, expiryDate, quantity and category
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body models.UpdateIngredientRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/ingredients/{id} [put]
func (c *ingredientController) UpdateIngredient(ctx *gin.Context) {
	id, ok := ingredientID(ctx)
	if !ok {
		return
	}

	var req models.UpdateIngredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "No data provided"))
		return
	}

	err := c.service.UpdateIngredient(id, req)
	switch {
	case errors.Is(err, services.ErrInvalidDate):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrIngredientInvalidData, "Invalid date format. Use YYYY-MM-DD"))
	case errors.Is(err, services.ErrNoFieldsToUpdate):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "No valid fields to update"))
	case errors.Is(err, services.ErrIngredientNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrIngredientNotFound, "Ingredient not found"))
	case err != nil:
		log.WithError(err).Error("Failed to update ingredient")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update ingredient"))
	default:
		ctx.JSON(http.StatusOK, gin.H{"message": "Ingredient updated successfully"})
	}
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Description Permanently remove an ingredient by its ID
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/ingredients/{id} [delete]
func (c *ingredientController) DeleteIngredient(ctx *gin.Context) {
	id, ok := ingredientID(ctx)
	if !ok {
		return
	}

	err := c.service.DeleteIngredient(id)
	switch {
	case errors.Is(err, services.ErrIngredientNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrIngredientNotFound, "Ingredient not found"))
	case err != nil:
		log.WithError(err).Error("Failed to delete ingredient")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to delete ingredient"))
	default:
		ctx.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted successfully"})
	}
}

// GetExpiringIngredients godoc
// @Summary List expiring ingredients
// @Description Get ingredients whose expiry date falls within the next week
// @Tags ingredients
// @Produce json
// @Param days query int false "Window in days" default(7)
// @Success 200 {array} models.ExpiringIngredient
// @Failure 500 {object} map[string]string
// @Router /api/expiring [get]
func (c *ingredientController) GetExpiringIngredients(ctx *gin.Context) {
	// TODO: the days query parameter is accepted but the window is fixed at
	// 7 days; confirm the intended range before wiring it into the query.
	_ = ctx.DefaultQuery("days", "7")

	ingredients, err := c.service.ListExpiringWithin(7)
	if err != nil {
		log.WithError(err).Error("Failed to list expiring ingredients")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to fetch expiring ingredients"))
		return
	}

	today := c.now()
	result := make([]models.ExpiringIngredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		item := models.ExpiringIngredient{
			ID:         ingredient.ID,
			Name:       ingredient.Name,
			ExpiryDate: ingredient.ExpiryDate,
			Quantity:   ingredient.Quantity,
			Category:   ingredient.Category,
		}
		if daysLeft, ok := services.DaysUntilExpiry(ingredient.ExpiryDate, today); ok {
			item.DaysUntilExpiry = &daysLeft
		}
		result = append(result, item)
	}
	ctx.JSON(http.StatusOK, result)
}

// GetStats godoc
// @Summary Pantry statistics
// @Description Count ingredients in total and per expiry bucket
// @Tags ingredients
// @Produce json
// @Success 200 {object} models.PantryStats
// @Failure 500 {object} map[string]string
// @Router /api/stats [get]
func (c *ingredientController) GetStats(ctx *gin.Context) {
	stats, err := c.service.Stats()
	if err != nil {
		log.WithError(err).Error("Failed to compute pantry stats")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to fetch stats"))
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// AddTestData godoc
// @Summary Seed sample ingredients
// @Description Insert a fixed set of sample rows for development
// @Tags dev
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/test-data [post]
func (c *ingredientController) AddTestData(ctx *gin.Context) {
	count, err := c.service.SeedTestData()
	if err != nil {
		log.WithError(err).Error("Failed to seed test data")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to add test data"))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Added " + strconv.Itoa(count) + " test ingredients"})
}

// ResetDatabase godoc
// @Summary Reset the ingredients table
// @Description Delete every ingredient and reset the ID sequence; requires ?confirm=true
// @Tags dev
// @Produce json
// @Param confirm query string true "Must be true"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/ingredients/reset-database [delete]
func (c *ingredientController) ResetDatabase(ctx *gin.Context) {
	if ctx.Query("confirm") != "true" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "This action requires confirmation. Add ?confirm=true to the URL"))
		return
	}

	deleted, err := c.service.Reset()
	if err != nil {
		log.WithError(err).Error("Failed to reset database")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to reset database"))
		return
	}
	log.WithField("deleted_count", deleted).Info("Ingredients table reset")
	ctx.JSON(http.StatusOK, gin.H{
		"message":      "Database reset successfully. Deleted " + strconv.FormatInt(deleted, 10) + " ingredients",
		"deletedCount": deleted,
	})
}

// withStatus enriches an ingredient with its day-offset and status label
func withStatus(ingredient models.Ingredient, today time.Time) models.IngredientStatus {
	daysLeft, ok := services.DaysUntilExpiry(ingredient.ExpiryDate, today)
	status := services.ExpiryStatus(daysLeft, ok)

	enriched := models.IngredientStatus{Ingredient: ingredient, Status: status}
	if ok {
		enriched.DaysUntilExpiry = &daysLeft
	}
	return enriched
}

// ingredientID parses the id path parameter, writing the 400 response
// itself when the value is not an integer
func ingredientID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid ingredient ID format"))
		return 0, false
	}
	return id, true
}
