package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for unknown emails and password
	// mismatches alike, so the response never reveals which one failed.
	ErrInvalidCredentials = errors.New("Invalid credentials.")
	// ErrEmailTaken is returned when signing up with an already registered email.
	ErrEmailTaken = errors.New("User with this email already exists.")
	// ErrInactiveUser is returned when an inactive user calls a gated endpoint.
	ErrInactiveUser = errors.New("Inactive user")
	// ErrInsufficientPermissions is returned when a non-admin calls an admin endpoint.
	ErrInsufficientPermissions = errors.New("Insufficient permissions")
	// ErrInvalidToken is returned by the refresh-token exchange for tokens that
	// fail verification or are not of the refresh kind.
	ErrInvalidToken = errors.New("Invalid Token")

	// ErrItemNotFound is returned when an item does not exist or is not owned
	// by the caller.
	ErrItemNotFound = errors.New("Item not found")
	// ErrCategoryNotFound is returned when a category does not exist.
	ErrCategoryNotFound = errors.New("Category not found")
	// ErrCategoriesNotFound is returned when an item write references at least
	// one unknown category id.
	ErrCategoriesNotFound = errors.New("One or more categories not found")

	// Empty list sentinels, only used when the empty-list-as-404 behavior is on.
	ErrNoItems      = errors.New("No items found")
	ErrNoCategories = errors.New("No categories found")
	ErrNoUsers      = errors.New("No users found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
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
		Detail: e.Message,
		Code:   e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInactiveUser):
		return NewHTTPError(http.StatusForbidden, err.Error(), "INACTIVE_USER")
	case errors.Is(err, ErrInsufficientPermissions):
		return NewHTTPError(http.StatusForbidden, err.Error(), "INSUFFICIENT_PERMISSIONS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrItemNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrCategoriesNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORIES_NOT_FOUND")
	case errors.Is(err, ErrNoItems), errors.Is(err, ErrNoCategories), errors.Is(err, ErrNoUsers):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
	}
}
