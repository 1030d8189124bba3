package middleware

import (
	"Kudos/pkg/log"
	"Kudos/pkg/response"
	"Kudos/pkg/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinZap 访问日志，panic 时记录堆栈并返回 500
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		defer func() {
			if err := recover(); err != nil {
				log.L.Error("panic recovered",
					zap.String("path", path),
					zap.String("stack", utils.PanicTrace(err)),
				)
				response.Abort(c, http.StatusInternalServerError, "服务器内部错误")
			}
		}()

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			log.L.Error(c.Errors.ByType(gin.ErrorTypePrivate).String(), fields...)
			return
		}
		log.L.Info("request", fields...)
	}
}
