package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	callerIDKey   = "caller_id"
	callerRoleKey = "caller_role"
)

// CallerIdentity extracts the out-of-band caller identity headers set by
// the platform's auth gateway. Validation of the session itself happens
// upstream; an empty id simply surfaces as NotAuthenticated downstream.
func CallerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(callerIDKey, c.GetHeader("X-User-ID"))
		c.Set(callerRoleKey, c.GetHeader("X-User-Role"))
		c.Next()
	}
}

// RequestLogging logs HTTP requests
func RequestLogging(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}

// CORS adds CORS headers
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-ID, X-User-Role")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
