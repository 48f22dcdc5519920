package middleware

import (
	"context"

	"expense-tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

// InjectTrace tags every request with a trace id. The id is readable from the gin context,
// from the request context handed to services, and by the client through X-Trace-Id.
func InjectTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceId := utils.GenerateTraceId()
		c.Set(utils.TraceIdKey.String(), traceId)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), utils.TraceIdKey, traceId))
		c.Header("X-Trace-Id", traceId)
		c.Next()
	}
}
