package middleware

import (
	"time"

	"turnos/queue-service/internal/constant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HandleRequestLog tags every request with an id and writes one access log
// line when it completes.
func HandleRequestLog(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(constant.RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Set(constant.RequestIdKey, requestId)
		c.Header(constant.RequestIdHeader, requestId)

		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"request_id": requestId,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
		})

		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Debug("request served")
		}
	}
}
