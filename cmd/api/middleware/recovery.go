package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"social-gateway/cmd/api/dto"
	"social-gateway/cmd/api/trace"
	"social-gateway/cmd/internal/logger"
)

// Recovery 는 핸들러 패닉을 잡아 로그를 남기고 고정된 500 응답을 반환한다.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorWithFields("panic recovered", logger.Fields{
					"method":     c.Request.Method,
					"path":       c.Request.URL.Path,
					"request_id": trace.RequestIDFromContext(c.Request.Context()),
					"panic":      fmt.Sprint(r),
					"stack":      string(debug.Stack()),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal server error"})
			}
		}()
		c.Next()
	}
}
