package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured origins to call the form and probe routes.
// With no origins configured only same-origin requests work, except in debug
// mode where any origin is accepted.
func CORSMiddleware(allowedOrigins []string, debug bool) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID", "X-Requested-With"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	switch {
	case slices.Contains(allowedOrigins, "*"):
		cfg.AllowAllOrigins = true
	case len(allowedOrigins) > 0:
		cfg.AllowOrigins = allowedOrigins
	case debug:
		cfg.AllowAllOrigins = true
	default:
		// no cross-origin callers: reject every Origin that reaches the check
		cfg.AllowOriginFunc = func(string) bool { return false }
	}

	return cors.New(cfg)
}
