package services

import (
	"errors"
	"time"

	"github.com/freshkeeper/freshkeeper-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Sentinel errors surfaced by the service layer. Controllers map these to
// HTTP statuses with errors.Is.
var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrNameRequired       = errors.New("name and expiryDate are required")
	ErrInvalidDate        = errors.New("invalid date format, use YYYY-MM-DD")
	ErrNoFieldsToUpdate   = errors.New("no valid fields to update")
)

// IngredientService provides access to the ingredients table
type IngredientService interface {
	// ListIngredients retrieves all ingredients ordered by expiry date ascending
	ListIngredients() ([]models.Ingredient, error)
	// CreateIngredient validates and inserts a new ingredient, returning its ID
	CreateIngredient(req models.CreateIngredientRequest) (int, error)
	// UpdateIngredient applies a partial update to an existing ingredient
	UpdateIngredient(id int, req models.UpdateIngredientRequest) error
	// DeleteIngredient removes an ingredient by its ID
	DeleteIngredient(id int) error
	// ListExpiringWithin retrieves ingredients expiring between today and
	// today+days, both endpoints inclusive, ordered by expiry date ascending
	ListExpiringWithin(days int) ([]models.Ingredient, error)
	// Stats counts ingredients per expiry bucket
	Stats() (models.PantryStats, error)
	// SeedTestData inserts the fixed sample rows and returns how many
	SeedTestData() (int, error)
	// Reset deletes every ingredient and resets the ID sequence, returning
	// the number of deleted rows
	Reset() (int64, error)
}

type ingredientService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewIngredientService creates a new instance of IngredientService
func NewIngredientService(db *gorm.DB) IngredientService {
	return &ingredientService{db: db, now: time.Now}
}

// NewIngredientServiceWithClock creates an IngredientService with an
// injected clock, used by tests to pin "today"
func NewIngredientServiceWithClock(db *gorm.DB, now func() time.Time) IngredientService {
	return &ingredientService{db: db, now: now}
}

func (s *ingredientService) ListIngredients() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Order("expiry_date ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *ingredientService) CreateIngredient(req models.CreateIngredientRequest) (int, error) {
	if req.Name == "" || req.ExpiryDate == "" {
		return 0, ErrNameRequired
	}
	if _, err := time.Parse(dateLayout, req.ExpiryDate); err != nil {
		return 0, ErrInvalidDate
	}

	ingredient := models.Ingredient{
		Name:       req.Name,
		ExpiryDate: req.ExpiryDate,
		Quantity:   req.Quantity,
		Category:   req.Category,
	}
	if err := s.db.Create(&ingredient).Error; err != nil {
		return 0, err
	}
	return ingredient.ID, nil
}

func (s *ingredientService) UpdateIngredient(id int, req models.UpdateIngredientRequest) error {
	if req.ExpiryDate != nil {
		if _, err := time.Parse(dateLayout, *req.ExpiryDate); err != nil {
			return ErrInvalidDate
		}
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return ErrNoFieldsToUpdate
	}

	result := s.db.Model(&models.Ingredient{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIngredientNotFound
	}
	return nil
}

func (s *ingredientService) DeleteIngredient(id int) error {
	result := s.db.Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIngredientNotFound
	}
	return nil
}

func (s *ingredientService) ListExpiringWithin(days int) ([]models.Ingredient, error) {
	from, to := s.dateRange(days)
	var ingredients []models.Ingredient
	err := s.db.
		Where("expiry_date BETWEEN ? AND ?", from, to).
		Order("expiry_date ASC").
		Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *ingredientService) Stats() (models.PantryStats, error) {
	var stats models.PantryStats
	today := s.now().Format(dateLayout)
	_, soonEnd := s.dateRange(3)

	if err := s.db.Model(&models.Ingredient{}).Count(&stats.TotalIngredients).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&models.Ingredient{}).
		Where("expiry_date < ?", today).
		Count(&stats.Expired).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&models.Ingredient{}).
		Where("expiry_date BETWEEN ? AND ?", today, soonEnd).
		Count(&stats.ExpiringSoon).Error; err != nil {
		return stats, err
	}
	stats.Fresh = stats.TotalIngredients - stats.Expired - stats.ExpiringSoon
	return stats, nil
}

func (s *ingredientService) SeedTestData() (int, error) {
	samples := []models.Ingredient{
		{Name: "Milk", ExpiryDate: "2025-08-15", Quantity: "1 gallon", Category: "Dairy"},
		{Name: "Bread", ExpiryDate: "2025-08-16", Quantity: "1 loaf", Category: "Bakery"},
		{Name: "Apples", ExpiryDate: "2025-08-20", Quantity: "6 pieces", Category: "Fruit"},
		{Name: "Chicken", ExpiryDate: "2025-08-14", Quantity: "2 lbs", Category: "Meat"},
		{Name: "Yogurt", ExpiryDate: "2025-08-25", Quantity: "4 cups", Category: "Dairy"},
	}
	for i := range samples {
		if err := s.db.Create(&samples[i]).Error; err != nil {
			return 0, err
		}
	}
	return len(samples), nil
}

func (s *ingredientService) Reset() (int64, error) {
	result := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Ingredient{})
	if result.Error != nil {
		return 0, result.Error
	}

	// Reset the autoincrement counter so new rows start at 1 again. The
	// sequence table only exists on SQLite; a failure here is not fatal.
	if err := s.db.Exec("DELETE FROM sqlite_sequence WHERE name = ?", "ingredients").Error; err != nil {
		log.WithError(err).Warn("Could not reset ingredient ID sequence")
	}
	return result.RowsAffected, nil
}

// dateRange returns today and today+days as YYYY-MM-DD strings. ISO dates
// compare lexicographically in calendar order, so BETWEEN on these strings
// is an inclusive calendar-date range.
func (s *ingredientService) dateRange(days int) (string, string) {
	today := s.now()
	return today.Format(dateLayout), today.AddDate(0, 0, days).Format(dateLayout)
}
