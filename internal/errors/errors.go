// Package errors provides custom error types for the Kassa API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional structured details,
// and optional internal error.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	StatusCode int            `json:"-"`
	Internal   error          `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Amount validation errors.
var (
	ErrNotInteger       = &AppError{Code: "NOT_INTEGER", Message: "Amount must be a whole number", StatusCode: http.StatusUnprocessableEntity}
	ErrNotPositiveValue = &AppError{Code: "NOT_POSITIVE_VALUE", Message: "Amount must be greater than zero", StatusCode: http.StatusUnprocessableEntity}
	ErrValueTooLarge    = &AppError{Code: "VALUE_TOO_LARGE", Message: "Amount exceeds the allowed maximum", StatusCode: http.StatusUnprocessableEntity}
	ErrEmptyString      = &AppError{Code: "EMPTY_STRING", Message: "Value must not be blank", StatusCode: http.StatusUnprocessableEntity}
)

// Ledger business rule errors.
var (
	ErrSpendingOverBalance = &AppError{Code: "SPENDING_OVER_BALANCE", Message: "Spending exceeds the available balance", StatusCode: http.StatusUnprocessableEntity}
	ErrNothingToCompute    = &AppError{Code: "NOTHING_TO_COMPUTE", Message: "Cannot project a runway with zero daily spending", StatusCode: http.StatusUnprocessableEntity}
	ErrEmptyOptions        = &AppError{Code: "EMPTY_OPTIONS", Message: "No options to sort", StatusCode: http.StatusUnprocessableEntity}
	ErrNotOwner            = &AppError{Code: "NOT_OWNER", Message: "Record belongs to another user", StatusCode: http.StatusForbidden}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "A user with this username already exists", StatusCode: http.StatusConflict}
)

// Category errors.
var (
	ErrCategoryNotFound  = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name already exists", StatusCode: http.StatusConflict}
)

// Ledger record errors.
var (
	ErrPaymentNotFound = &AppError{Code: "PAYMENT_NOT_FOUND", Message: "Payment not found", StatusCode: http.StatusNotFound}
	ErrIncomeNotFound  = &AppError{Code: "INCOME_NOT_FOUND", Message: "Income not found", StatusCode: http.StatusNotFound}
)

// NewSpendingOverBalance builds a SPENDING_OVER_BALANCE error carrying the
// requested spending and the balance that was actually available, both in kopecks.
func NewSpendingOverBalance(spending, available int64) *AppError {
	return &AppError{
		Code:       ErrSpendingOverBalance.Code,
		Message:    fmt.Sprintf("Spending of %d exceeds the available balance of %d", spending, available),
		StatusCode: ErrSpendingOverBalance.StatusCode,
		Details: map[string]any{
			"spending": spending,
			"balance":  available,
		},
	}
}

// NewNotOwner builds a NOT_OWNER error naming the record the caller tried to touch.
func NewNotOwner(recordName string) *AppError {
	return &AppError{
		Code:       ErrNotOwner.Code,
		Message:    fmt.Sprintf("Record %q belongs to another user", recordName),
		StatusCode: ErrNotOwner.StatusCode,
		Details:    map[string]any{"record": recordName},
	}
}

// NewValueTooLarge builds a VALUE_TOO_LARGE error carrying the offending
// major-unit value and the configured ceiling.
func NewValueTooLarge(value, limit int64) *AppError {
	return &AppError{
		Code:       ErrValueTooLarge.Code,
		Message:    fmt.Sprintf("Amount must not exceed %d, got %d", limit, value),
		StatusCode: ErrValueTooLarge.StatusCode,
		Details:    map[string]any{"value": value, "limit": limit},
	}
}

// NewNotInteger builds a NOT_INTEGER error carrying the raw input.
func NewNotInteger(input string) *AppError {
	return &AppError{
		Code:       ErrNotInteger.Code,
		Message:    fmt.Sprintf("Amount must be a whole number, got %q", input),
		StatusCode: ErrNotInteger.StatusCode,
		Details:    map[string]any{"value": input},
	}
}

// NewNotPositiveValue builds a NOT_POSITIVE_VALUE error carrying the offending value.
func NewNotPositiveValue(value int64) *AppError {
	return &AppError{
		Code:       ErrNotPositiveValue.Code,
		Message:    fmt.Sprintf("Amount must be greater than zero, got %d", value),
		StatusCode: ErrNotPositiveValue.StatusCode,
		Details:    map[string]any{"value": value},
	}
}
