package v1

import (
	"fmt"
	"log/slog"

	"go-landing-mailer/config"
	"go-landing-mailer/internal/delivery/http/middleware"
	"go-landing-mailer/internal/domain"
	"go-landing-mailer/web"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	NotificationUC domain.NotificationUsecase
	HealthUC       domain.HealthUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// probe routes are kept out of the access log
var quietPaths = []string{"/health", "/ready", "/live", "/metrics", "/metrics/prometheus"}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	assets, err := static.EmbedFolder(web.StaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to load static assets: %w", err)
	}

	cfg := deps.Config
	log := deps.Logger

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	page := NewPageHandler(cfg)

	// Global Middlewares
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.App.Debug)) // CORS must run before handlers
	r.Use(middleware.Recovery(log, page.Render))
	r.Use(gin.LoggerWithWriter(gin.DefaultWriter, quietPaths...))
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(!cfg.App.Debug))
	r.Use(middleware.ErrorHandler(log))
	r.Use(middleware.StaticAssets("/static", assets))

	r.GET("/", page.Landing)
	NewNotificationHandler(r, deps.NotificationUC, cfg.Notify.SurfaceFailures, log)
	NewHealthHandler(r, deps.HealthUC)
	NewEchoHandler(r)

	r.GET("/metrics/prometheus", gin.WrapH(promhttp.Handler()))

	r.NoRoute(page.NotFound)

	return r, nil
}
