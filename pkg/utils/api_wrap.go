package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID,
	})
}

// HandleServiceError maps service-layer sentinel errors onto the one actionable
// HTTP category the caller is allowed to see.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCustomerNotFound):
		RespondError(c, http.StatusNotFound, "Customer not found")
	case errors.Is(err, ErrBusinessNotFound):
		RespondError(c, http.StatusNotFound, "Business not found")
	case errors.Is(err, ErrForbiddenScan):
		RespondError(c, http.StatusForbidden, "Unauthorized scan attempt")
	case errors.Is(err, ErrValidationFailed):
		RespondError(c, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, ErrInvalidRewardType):
		RespondError(c, http.StatusBadRequest, "Unknown reward type")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email already exists or invalid input")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrScanFailed):
		log.Printf("Scan failed: %v", err)
		RespondError(c, http.StatusInternalServerError, "Scan failed")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
