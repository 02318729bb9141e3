// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/accounts/internal/errors"
)

// ErrorResponse represents a structured error response. The error field
// carries the caller-visible message; internal error details never reach it.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON
// error response. Domain error messages are caller-visible by construction;
// unknown errors are logged in full and reported as a generic internal error.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var errorResponse ErrorResponse

	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{Error: err.Error()}

	case apperrors.Is(err, apperrors.ErrConflict):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{Error: err.Error()}

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		errorResponse = ErrorResponse{Error: err.Error()}

	case apperrors.Is(err, apperrors.ErrLocked):
		statusCode = http.StatusForbidden
		errorResponse = ErrorResponse{Error: err.Error()}

	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode = http.StatusForbidden
		errorResponse = ErrorResponse{Error: err.Error()}

	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		errorResponse = ErrorResponse{Error: err.Error()}

	default:
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{Error: "Internal server error"}
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}
