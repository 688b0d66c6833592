package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-cv-review-backend/internal/delivery/http/response"
	"go-cv-review-backend/pkg/apperror"
	"go-cv-review-backend/pkg/logger"
)

// ErrorHandler maps errors collected on the context to the response
// envelope. AppError codes pass through; anything else is logged and hidden
// behind a generic 500 so internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Warn("Request failed", "path", c.FullPath(), "code", appErr.Code, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("Unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
