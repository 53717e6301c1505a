package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"social-gateway/cmd/api/trace"
	"social-gateway/cmd/internal/logger"
)

// RequestLogging 은 Gateway 진입부터 응답까지 걸린 시간을 구조화 로그로 남긴다.
// RequestTrace 뒤에 등록해야 request_id/span_id 가 채워진다.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		ctx := c.Request.Context()
		logger.InfoWithFields("completed request", logger.Fields{
			"method":      method,
			"path":        path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration":    time.Since(start).String(),
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
			"request_id":  trace.RequestIDFromContext(ctx),
			"span_id":     trace.CurrentSpanID(ctx),
		})
	}
}
