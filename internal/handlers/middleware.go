package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger emits one structured line per request after it completes.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()

	c.Next()

	fields := []interface{}{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"route", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
	}
	if len(c.Errors) > 0 {
		fields = append(fields, "errors", c.Errors.String())
	}
	h.log.Infow("http_request", fields...)
}
