package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/repository"
	"cab/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrRequestNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrInvalidAge),
		errors.Is(err, service.ErrInvalidVehicle),
		errors.Is(err, repository.ErrInvalidAmount):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict

	// Service unavailable
	case errors.Is(err, service.ErrNoDriverAvailable):
		return http.StatusServiceUnavailable

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
