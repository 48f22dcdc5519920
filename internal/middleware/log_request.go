package middleware

import (
	"expense-tracker/internal/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func LogRequest() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		service := utils.ExtractServiceName()
		message := "Request received: " + ctx.Request.Method + " " + ctx.Request.URL.Path
		entry := log.WithFields(log.Fields{
			"traceId": utils.ExtractTraceId(ctx),
			"service": service,
		})
		utils.LogEntry(entry, "info", message)
		ctx.Next()
	}
}
