package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when the authenticated user's record is missing.
	ErrUserNotFound = errors.New("user not found")
	// ErrProductNotFound is returned when a product is not found or not owned by the caller.
	ErrProductNotFound = errors.New("product not found")
	// ErrDictionaryEntryNotFound is returned when a dictionary entry is not found.
	ErrDictionaryEntryNotFound = errors.New("dictionary entry not found")
	// ErrNoIngredients is returned when a generation request carries no usable ingredient.
	ErrNoIngredients = errors.New("no ingredients provided")
	// ErrInsufficientCredits is returned when the caller's credit balance is exhausted.
	ErrInsufficientCredits = errors.New("insufficient credits")
	// ErrGenerationFailed is returned when the external model call fails or returns nothing.
	ErrGenerationFailed = errors.New("recipe generation failed")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrDictionaryEntryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "DICTIONARY_ENTRY_NOT_FOUND")
	case errors.Is(err, ErrNoIngredients):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_INGREDIENTS")
	case errors.Is(err, ErrInsufficientCredits):
		return NewHTTPError(http.StatusPaymentRequired, err.Error(), "INSUFFICIENT_CREDITS")
	case errors.Is(err, ErrGenerationFailed):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "GENERATION_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
