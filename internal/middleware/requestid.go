package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/logger"
)

// RequestID attaches a correlation ID to every request. An incoming
// X-Request-ID header is honored; otherwise a new UUID is issued. The ID
// is echoed back in the response and carried in the request context so
// logs and error envelopes can reference it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
