package models

// APIError represents a standardized error response for the API. The
// message is serialized under "error" because that is the key API clients
// already read.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Ingredient-specific errors
	ErrIngredientNotFound    = "INGREDIENT_NOT_FOUND"
	ErrIngredientInvalidData = "INGREDIENT_INVALID_DATA"

	// Recipe provider errors
	ErrProviderNotConfigured = "PROVIDER_NOT_CONFIGURED"
	ErrProviderUnavailable   = "PROVIDER_UNAVAILABLE"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
