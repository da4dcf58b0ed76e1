package middleware

import (
	"log/slog"
	"net/http"

	"go-landing-mailer/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a logged 500 rendered by fallback
func Recovery(log *slog.Logger, fallback func(c *gin.Context, code int)) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		metrics.PanicRecoveries.Inc()
		log.Error("Internal server error", "panic", recovered, "path", c.Request.URL.Path, "method", c.Request.Method)
		fallback(c, http.StatusInternalServerError)
		c.Abort()
	})
}
