package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-cv-review-backend/internal/domain"
)

// RequestID attaches a request id to every request, honoring an incoming
// X-Request-ID header so ids survive proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(string(domain.KeyRequestID), id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
