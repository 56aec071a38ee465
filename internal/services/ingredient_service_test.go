package services

import (
	"testing"
	"time"

	"github.com/freshkeeper/freshkeeper-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Ingredient{})
	require.NoError(t, err)

	return db
}

func fixedClock() time.Time {
	return time.Date(2025, 8, 30, 10, 30, 0, 0, time.UTC)
}

func newTestService(t *testing.T) (IngredientService, *gorm.DB) {
	db := setupTestDB(t)
	return NewIngredientServiceWithClock(db, fixedClock), db
}

func TestCreateIngredient(t *testing.T) {
	service, db := newTestService(t)

	id, err := service.CreateIngredient(models.CreateIngredientRequest{
		Name:       "Milk",
		ExpiryDate: "2025-09-02",
		Quantity:   "1 gallon",
		Category:   "Dairy",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	var stored models.Ingredient
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, "Milk", stored.Name)
	assert.Equal(t, "2025-09-02", stored.ExpiryDate)
	assert.False(t, stored.DateAdded.IsZero())
}

func TestCreateIngredientValidation(t *testing.T) {
	service, db := newTestService(t)

	testCases := []struct {
		name     string
		req      models.CreateIngredientRequest
		expected error
	}{
		{
			name:     "missing name",
			req:      models.CreateIngredientRequest{ExpiryDate: "2025-09-02"},
			expected: ErrNameRequired,
		},
		{
			name:     "missing expiry date",
			req:      models.CreateIngredientRequest{Name: "Milk"},
			expected: ErrNameRequired,
		},
		{
			name:     "malformed expiry date",
			req:      models.CreateIngredientRequest{Name: "Milk", ExpiryDate: "02-09-2025"},
			expected: ErrInvalidDate,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateIngredient(tt.req)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	// Nothing may have been persisted by the rejected requests
	var count int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateIngredientPartial(t *testing.T) {
	service, db := newTestService(t)

	id, err := service.CreateIngredient(models.CreateIngredientRequest{
		Name: "Bread", ExpiryDate: "2025-09-01", Quantity: "1 loaf", Category: "Bakery",
	})
	require.NoError(t, err)

	quantity := "2 loaves"
	err = service.UpdateIngredient(id, models.UpdateIngredientRequest{Quantity: &quantity})
	require.NoError(t, err)

	var stored models.Ingredient
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, "2 loaves", stored.Quantity)
	// Untouched fields survive a partial update
	assert.Equal(t, "Bread", stored.Name)
	assert.Equal(t, "2025-09-01", stored.ExpiryDate)
}

func TestUpdateIngredientErrors(t *testing.T) {
	service, db := newTestService(t)

	name := "Ghost"
	err := service.UpdateIngredient(999, models.UpdateIngredientRequest{Name: &name})
	assert.ErrorIs(t, err, ErrIngredientNotFound)

	// A not-found update must not create a row
	var count int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&count).Error)
	assert.Zero(t, count)

	err = service.UpdateIngredient(999, models.UpdateIngredientRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)

	badDate := "tomorrow"
	err = service.UpdateIngredient(999, models.UpdateIngredientRequest{ExpiryDate: &badDate})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDeleteIngredient(t *testing.T) {
	service, _ := newTestService(t)

	id, err := service.CreateIngredient(models.CreateIngredientRequest{
		Name: "Yogurt", ExpiryDate: "2025-09-10",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteIngredient(id))

	// Deleting again reports not found, and the row is gone from listings
	assert.ErrorIs(t, service.DeleteIngredient(id), ErrIngredientNotFound)

	ingredients, err := service.ListIngredients()
	require.NoError(t, err)
	assert.Empty(t, ingredients)
}

func TestListIngredientsOrdering(t *testing.T) {
	service, _ := newTestService(t)

	for _, ing := range []models.CreateIngredientRequest{
		{Name: "Apples", ExpiryDate: "2025-09-20"},
		{Name: "Chicken", ExpiryDate: "2025-08-29"},
		{Name: "Milk", ExpiryDate: "2025-09-02"},
	} {
		_, err := service.CreateIngredient(ing)
		require.NoError(t, err)
	}

	ingredients, err := service.ListIngredients()
	require.NoError(t, err)
	require.Len(t, ingredients, 3)
	assert.Equal(t, "Chicken", ingredients[0].Name)
	assert.Equal(t, "Milk", ingredients[1].Name)
	assert.Equal(t, "Apples", ingredients[2].Name)
}

func TestListExpiringWithin(t *testing.T) {
	service, _ := newTestService(t)

	// Clock is pinned to 2025-08-30
	for _, ing := range []models.CreateIngredientRequest{
		{Name: "Expired", ExpiryDate: "2025-08-29"},
		{Name: "Today", ExpiryDate: "2025-08-30"},
		{Name: "WindowEdge", ExpiryDate: "2025-09-06"},
		{Name: "Beyond", ExpiryDate: "2025-09-07"},
	} {
		_, err := service.CreateIngredient(ing)
		require.NoError(t, err)
	}

	expiring, err := service.ListExpiringWithin(7)
	require.NoError(t, err)
	require.Len(t, expiring, 2)
	// Both endpoints are inclusive, already expired items are excluded
	assert.Equal(t, "Today", expiring[0].Name)
	assert.Equal(t, "WindowEdge", expiring[1].Name)
}

func TestStats(t *testing.T) {
	service, _ := newTestService(t)

	for _, ing := range []models.CreateIngredientRequest{
		{Name: "Expired", ExpiryDate: "2025-08-28"},
		{Name: "Soon", ExpiryDate: "2025-09-01"},
		{Name: "SoonEdge", ExpiryDate: "2025-09-02"},
		{Name: "Fresh", ExpiryDate: "2025-10-01"},
	} {
		_, err := service.CreateIngredient(ing)
		require.NoError(t, err)
	}

	stats, err := service.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalIngredients)
	assert.Equal(t, int64(1), stats.Expired)
	assert.Equal(t, int64(2), stats.ExpiringSoon)
	assert.Equal(t, int64(1), stats.Fresh)
}

func TestSeedTestData(t *testing.T) {
	service, _ := newTestService(t)

	count, err := service.SeedTestData()
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	ingredients, err := service.ListIngredients()
	require.NoError(t, err)
	assert.Len(t, ingredients, 5)
}

func TestReset(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.SeedTestData()
	require.NoError(t, err)

	deleted, err := service.Reset()
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted)

	ingredients, err := service.ListIngredients()
	require.NoError(t, err)
	assert.Empty(t, ingredients)

	// The ID sequence starts over after a reset
	id, err := service.CreateIngredient(models.CreateIngredientRequest{
		Name: "Milk", ExpiryDate: "2025-09-02",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}
