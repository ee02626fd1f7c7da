package api

import (
	"errors"
	"net/http" // HTTP status codes

	"restaurant_system/internal/domain"
	"restaurant_system/internal/middleware"

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/sirupsen/logrus"
)

// statusFor maps a domain error kind to its HTTP status
func statusFor(err error) int {
	var de *domain.Error
	if !errors.As(err, &de) {
		return http.StatusInternalServerError
	}
	switch de.Kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidTransition:
		return http.StatusUnprocessableEntity
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case domain.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError writes err as JSON; internal failures are logged and hidden
func respondError(c *gin.Context, err error, action string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		middleware.Logger(c).WithFields(logrus.Fields{
			"action": action,
			"error":  err.Error(),
		}).Error("Request failed")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	var de *domain.Error
	errors.As(err, &de)
	c.JSON(status, gin.H{"error": de.Message})
}

// badRequest answers a request body or parameter that could not be parsed
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
