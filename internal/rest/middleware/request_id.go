package middleware

import (
	"strconv"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/social-feed/internal/metrics"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's X-Request-ID if present
func RequestID() gin.HandlerFunc {
	return requestid.New(
		requestid.WithGenerator(func() string {
			return uuid.New().String()
		}),
		requestid.WithHandler(func(c *gin.Context, id string) {
			c.Set("request_id", id)
		}),
	)
}

// AccessLog logs and counts every request once it is handled. It must run after RequestID.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		latency := time.Since(start)

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(latency.Seconds())

		entry := logrus.WithFields(logrus.Fields{
			"request_id": requestid.Get(c),
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency":    latency.String(),
		})
		if status >= 500 {
			entry.Error("request failed")
			return
		}
		entry.Info("request handled")
	}
}
