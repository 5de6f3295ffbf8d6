// Package errors defines the structured error envelope used by the HTTP
// surface. Core packages return plain typed errors; this package maps
// them to API responses.
package errors

import (
	"net/http"

	"github.com/go-chi/render"
)

// APIError is a structured API error response.
type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Render implements render.Renderer.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates an APIError.
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{StatusCode: statusCode, ErrorCode: errorCode, Message: message}
}

// NewWithDetails creates an APIError carrying a details payload.
func NewWithDetails(statusCode int, errorCode, message string, details any) *APIError {
	return &APIError{StatusCode: statusCode, ErrorCode: errorCode, Message: message, Details: details}
}

// Predefined errors for common scenarios.
var (
	ErrInvalidRequest    = New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrPayloadTooLarge   = New(http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body exceeds the maximum allowed size")
	ErrRateLimitExceeded = New(http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded")
	ErrInternalServer    = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
)

// ValidationError carries one field-level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrValidation creates a validation error for one field.
func ErrValidation(field, message string) *APIError {
	return NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", ValidationError{
		Field:   field,
		Message: message,
	})
}

// ErrUnknownColumn reports a column-name reference that resolved to
// nothing, with the offending name and a sample of valid names.
func ErrUnknownColumn(name string, available []string) *APIError {
	return NewWithDetails(http.StatusUnprocessableEntity, "UNKNOWN_COLUMN",
		"Column name not found in table",
		map[string]any{"column": name, "available": available})
}

// ErrColumnOutOfRange reports an integer column reference outside the
// table's bounds.
func ErrColumnOutOfRange(index, columns int) *APIError {
	return NewWithDetails(http.StatusUnprocessableEntity, "COLUMN_OUT_OF_RANGE",
		"Column index out of range",
		map[string]any{"index": index, "columns": columns})
}

// ErrTableSource reports unreadable or malformed table input.
func ErrTableSource(err error) *APIError {
	return NewWithDetails(http.StatusBadRequest, "TABLE_SOURCE_FAILED", "Failed to read table input", err.Error())
}

// ErrorResponse is the envelope every error response is wrapped in.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// NewErrorResponse wraps an APIError for rendering.
func NewErrorResponse(err *APIError) *ErrorResponse {
	return &ErrorResponse{Success: false, Error: err}
}

// Render implements render.Renderer.
func (e *ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.Error.Render(w, r)
}
