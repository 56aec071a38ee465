package models

import "time"

// Ingredient represents one pantry item and its expiry date
type Ingredient struct {
	ID         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"not null"`
	ExpiryDate string    `json:"expiryDate" gorm:"not null"` // YYYY-MM-DD
	Quantity   string    `json:"quantity"`
	Category   string    `json:"category"`
	DateAdded  time.Time `json:"dateAdded" gorm:"autoCreateTime"`
}

// IngredientStatus is an ingredient enriched with its derived expiry status
type IngredientStatus struct {
	Ingredient
	DaysUntilExpiry *int   `json:"daysUntilExpiry"`
	Status          string `json:"status"`
}

// CreateIngredientRequest is the payload for creating an ingredient
type CreateIngredientRequest struct {
	Name       string `json:"name"`
	ExpiryDate string `json:"expiryDate"`
	Quantity   string `json:"quantity"`
	Category   string `json:"category"`
}

// UpdateIngredientRequest is the payload for a partial update.
// Nil fields are left untouched.
type UpdateIngredientRequest struct {
	Name       *string `json:"name"`
	ExpiryDate *string `json:"expiryDate"`
	Quantity   *string `json:"quantity"`
	Category   *string `json:"category"`
}

// Fields returns the non-nil fields as a column/value map for the update
// statement. Empty map means there is nothing to update.
func (r *UpdateIngredientRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.ExpiryDate != nil {
		fields["expiry_date"] = *r.ExpiryDate
	}
	if r.Quantity != nil {
		fields["quantity"] = *r.Quantity
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	return fields
}

// ExpiringIngredient is the trimmed shape served by the expiring endpoint:
// no derived status and no creation timestamp, just the row plus its
// day-offset
type ExpiringIngredient struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	ExpiryDate      string `json:"expiryDate"`
	Quantity        string `json:"quantity"`
	Category        string `json:"category"`
	DaysUntilExpiry *int   `json:"daysUntilExpiry"`
}

// PantryStats summarizes the pantry by expiry bucket
type PantryStats struct {
	TotalIngredients int64 `json:"totalIngredients"`
	Expired          int64 `json:"expired"`
	ExpiringSoon     int64 `json:"expiringSoon"`
	Fresh            int64 `json:"fresh"`
}
