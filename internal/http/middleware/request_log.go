package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/salesflow-backend/internal/platform/ctxutil"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
)

var quietPaths = map[string]bool{
	"/healthcheck": true,
	"/readyz":      true,
	"/metrics":     true,
}

// RequestLogger logs one line per request after it completes. Successful probe and scrape
// requests are logged at debug.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		ctx := c.Request.Context()

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if rd := ctxutil.GetRequestData(ctx); rd != nil && rd.UserID != "" {
			fields = append(fields, "user_id", rd.UserID, "role", rd.Role)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		l := log.ForContext(ctx)
		switch {
		case status >= 500:
			l.Error("HTTP request", fields...)
		case status >= 400:
			l.Warn("HTTP request", fields...)
		case quietPaths[path]:
			l.Debug("HTTP request", fields...)
		default:
			l.Info("HTTP request", fields...)
		}
	}
}
