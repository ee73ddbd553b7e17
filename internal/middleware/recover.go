package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"timetable-optimizer/internal/dto"
	"timetable-optimizer/pkg/apperrors"
)

// Recover turns a panicking handler into a 500 JSON error response instead
// of killing the connection, logging the InvariantViolation (or unknown
// panic) with the request's correlation id attached.
func Recover(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				requestID := RequestIDValue(c)
				message := "internal error"
				if iv, ok := r.(*apperrors.InvariantViolation); ok {
					message = iv.Error()
				}
				logger.Error("panic recovered",
					zap.String("request_id", requestID),
					zap.Any("panic", r),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Status:  "error",
					Message: message,
				})
			}
		}()
		c.Next()
	}
}
