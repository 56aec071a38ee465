package models

// InstructionStep is one numbered cooking step
type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// RecipeSuggestion is a recipe sourced from the external provider, matched
// against pantry items. It is rebuilt on every request and never persisted.
//
// ReadyInMinutes and Servings hold either the provider's number or the
// string "Unknown" when the provider omits the field.
type RecipeSuggestion struct {
	ID                    int               `json:"id"`
	Title                 string            `json:"title"`
	Image                 string            `json:"image"`
	ReadyInMinutes        interface{}       `json:"readyInMinutes"`
	Servings              interface{}       `json:"servings"`
	SourceURL             string            `json:"sourceUrl"`
	Summary               string            `json:"summary"`
	UsedIngredients       []string          `json:"usedIngredients"`
	MissedIngredients     []string          `json:"missedIngredients"`
	UsedIngredientCount   int               `json:"usedIngredientCount"`
	MissedIngredientCount int               `json:"missedIngredientCount"`
	Instructions          []InstructionStep `json:"instructions"`
	Source                string            `json:"source"`
}

// RecipeSuggestionsResponse is the payload of the suggestion endpoint
type RecipeSuggestionsResponse struct {
	ExpiringIngredients []string           `json:"expiringIngredients"`
	Recipes             []RecipeSuggestion `json:"recipes"`
	RecipeCount         int                `json:"recipeCount,omitempty"`
	Message             string             `json:"message,omitempty"`
}
