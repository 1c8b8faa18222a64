package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ridwanfathin/claw-dashboard-service/internal/middleware"
	"github.com/ridwanfathin/claw-dashboard-service/internal/model"
)

// getQueryInt retrieves an integer query parameter with a default value
func getQueryInt(c *gin.Context, paramName string, defaultValue int) (int, error) {
	valueStr := c.Query(paramName)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}

	return value, nil
}

// getQueryBool retrieves a boolean query parameter, false when absent
func getQueryBool(c *gin.Context, paramName string) bool {
	switch strings.ToLower(c.Query(paramName)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// sessionOwner returns the cache key of the caller's session
func sessionOwner(c *gin.Context) string {
	if s, ok := middleware.GetSession(c); ok {
		return s.Owner()
	}
	return c.GetHeader("Authorization")
}

// sessionToken returns the bearer token of the caller's session
func sessionToken(c *gin.Context) string {
	if s, ok := middleware.GetSession(c); ok {
		return s.Token
	}
	return ""
}

// logError records a failed request with its route
func logError(log *logrus.Logger, c *gin.Context, err error, message string) {
	log.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).Error(message)
}

// newErrorDetail creates a new error detail
func newErrorDetail(field, message string) model.ErrorDetail {
	return model.ErrorDetail{
		Field:   field,
		Message: message,
	}
}
