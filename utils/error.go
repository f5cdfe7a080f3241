package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details string   `json:"details,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// ErrorHandler catches panics and returns a structured 500 instead of dropping the connection.
// Register it after middleware.RequestLogger so the panic is logged with the request ID.
func ErrorHandler(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := base
				if l, ok := c.Get("logger"); ok {
					if scoped, ok := l.(*zap.Logger); ok {
						logger = scoped
					}
				}
				logger.Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.FullPath()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:   "Internal server error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, logger *zap.Logger, status int, resp ErrorResponse) {
	if status >= http.StatusInternalServerError {
		logger.Error(resp.Error, zap.String("details", resp.Details))
	} else {
		logger.Warn(resp.Error, zap.String("details", resp.Details), zap.Strings("missing", resp.Missing))
	}
	c.JSON(status, resp)
}
