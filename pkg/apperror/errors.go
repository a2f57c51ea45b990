package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict       = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrUnprocessable  = &AppError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}
)

// Financial record errors
var (
	// ErrSequenceNotConfigured is returned when a company has no invoice
	// sequence row. This is a setup problem, not a transient failure.
	ErrSequenceNotConfigured = &AppError{Code: http.StatusConflict, Message: "Invoice sequence not configured for this company"}

	// ErrArchiveNotFound is returned when restoring an archive id that does not exist.
	ErrArchiveNotFound = &AppError{Code: http.StatusNotFound, Message: "Archived record not found"}

	// ErrInvalidPartialPayment is returned when a partial payment does not
	// satisfy 0 < paid < total. A full payment must be recorded as paid.
	ErrInvalidPartialPayment = &AppError{Code: http.StatusUnprocessableEntity, Message: "Partial payment must be greater than zero and less than the bill total"}

	// ErrIdentifierSpaceExhausted is returned when no free suffix could be
	// found for a quotation identifier within the attempt bound.
	ErrIdentifierSpaceExhausted = &AppError{Code: http.StatusConflict, Message: "Could not derive a unique quotation identifier"}

	// ErrRecordLocked is returned when mutating an invoice that is paid or cancelled.
	ErrRecordLocked = &AppError{Code: http.StatusConflict, Message: "Invoice is locked once paid or cancelled"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewLineItemError creates a field error naming the offending line index and field
func NewLineItemError(index int, field, message string) FieldError {
	return FieldError{
		Field:   fmt.Sprintf("items[%d].%s", index, field),
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
