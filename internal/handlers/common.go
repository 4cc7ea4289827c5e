package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/nederlandse-workbook/learning-service/internal/errors"
	"github.com/nederlandse-workbook/learning-service/internal/services"
)

// ===== COMMON RESPONSE STRUCTURES =====

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthCheck responds to liveness probes.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// currentUserID returns the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) string {
	return c.GetString(contextUserID)
}

// respondError maps service errors onto HTTP statuses. Precondition failures
// (no flashcards, no active quiz) are 409s the client can recover from, not
// server faults.
func respondError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Details: apperrors.ToValidationErrors(err),
			Code:    "VALIDATION_FAILED",
		})
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: err.Error(),
			Code:    "NOT_FOUND",
		})
	case services.IsForbidden(err):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: err.Error(),
			Code:    "FORBIDDEN",
		})
	case services.IsPrecondition(err):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: err.Error(),
			Code:    "PRECONDITION_FAILED",
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "internal server error",
			Code:    "INTERNAL_ERROR",
		})
	}
}
