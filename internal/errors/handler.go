package errors

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"numclean/internal/table"
)

// ErrorHandler centralizes mapping from Go errors to API responses.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates an error handler.
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger.With(slog.String("component", "error_handler"))}
}

// HandleError converts err to an APIError envelope and writes it.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	apiErr := ToAPIError(err)

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("error_code", apiErr.ErrorCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	if err := render.Render(w, r, NewErrorResponse(apiErr)); err != nil {
		http.Error(w, apiErr.Message, apiErr.StatusCode)
	}
}

// ToAPIError maps any error to an APIError, recognizing the coercion
// core's reference-resolution failures.
func ToAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var unknown *table.UnknownColumnError
	if errors.As(err, &unknown) {
		return ErrUnknownColumn(unknown.Name, unknown.Available)
	}

	var oor *table.OutOfRangeError
	if errors.As(err, &oor) {
		return ErrColumnOutOfRange(oor.Index, oor.Columns)
	}

	return ErrInternalServer
}
