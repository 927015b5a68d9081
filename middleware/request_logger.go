package middleware

import (
	"time"

	"roomfinder/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// LoggerKey is the Gin context key holding the request-scoped logger.
	LoggerKey = "logger"
	// RequestIDHeader carries the request id in and out.
	RequestIDHeader = "X-Request-ID"
)

// RequestLoggerMiddleware tags each request with an id and logs its outcome.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)

		logger := utils.GetLogger().With(zap.String("requestId", requestID))
		c.Set(LoggerKey, logger)

		start := time.Now()
		c.Next()

		logger.Info("request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", ClientIP(c)))
	}
}
