package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/claw-dashboard-service/internal/model"
)

// Common error messages
const (
	ErrInvalidQueryParams = "Invalid query parameters"
	ErrInternalServer     = "Internal server error"
	ErrReportFetch        = "Failed to fetch payments from upstream"
	ErrHistoryDisabled    = "Report history is not configured"
	ErrNoHealthSnapshot   = "No machine health data yet for this store"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, message string, details ...model.ErrorDetail) {
	response := model.ErrorResponse{
		Status:  http.StatusText(statusCode),
		Message: message,
		Details: details,
	}
	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...model.ErrorDetail) {
	respondWithError(c, http.StatusBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, http.StatusNotFound, message)
}

// respondInternalServerError sends a 500 Internal Server Error response
func respondInternalServerError(c *gin.Context, message string) {
	respondWithError(c, http.StatusInternalServerError, message)
}

// respondBadGateway sends a 502 Bad Gateway response
func respondBadGateway(c *gin.Context, message string, details ...model.ErrorDetail) {
	respondWithError(c, http.StatusBadGateway, message, details...)
}

// respondServiceUnavailable sends a 503 Service Unavailable response
func respondServiceUnavailable(c *gin.Context, message string) {
	respondWithError(c, http.StatusServiceUnavailable, message)
}

// respondOK sends a 200 OK response with data
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
