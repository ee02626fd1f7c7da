package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

const contextLogger = "logger"

// RequestLogger tags every request with an id, echoes it back and logs the
// outcome with logrus
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		entry := logrus.WithField("request_id", id)
		c.Set(contextLogger, entry)

		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.WithFields(fields).Error("Request failed")
		case status >= 400:
			entry.WithFields(fields).Warn("Request rejected")
		default:
			entry.WithFields(fields).Info("Request handled")
		}
	}
}

// Logger returns the request-scoped log entry
func Logger(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(contextLogger); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
