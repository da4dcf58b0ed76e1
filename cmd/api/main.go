package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-landing-mailer/config"
	v1 "go-landing-mailer/internal/delivery/http/v1"
	"go-landing-mailer/internal/usecase"
	"go-landing-mailer/pkg/email"
	"go-landing-mailer/pkg/logger"
	"go-landing-mailer/pkg/sysmetrics"
	"go-landing-mailer/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Landing page backend that relays appointment and contact forms by email",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.Version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Setup Logger
	log := logger.Init(cfg.App.Debug)
	log.Info("Starting landing backend",
		"addr", cfg.Server.Addr(),
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Email Service
	emailService := email.NewEmailService(cfg.SMTP, log)
	if !emailService.IsConfigured() {
		// not fatal: every send fails until EPASS is provided
		log.Warn("Email service not fully configured - form submissions will not be delivered", "smtp_host", cfg.SMTP.Host)
	}

	if len(cfg.CORS.AllowedOrigins) == 0 && !cfg.App.Debug {
		log.Warn("CORS_ALLOWED_ORIGINS is empty - behind a proxy that rewrites Host the landing forms will be rejected")
	}

	// 4. Setup UseCases
	composer := usecase.NewComposer(validation.New())
	notificationUC := usecase.NewNotificationUsecase(composer, emailService, log)
	collector := sysmetrics.NewCollector(cfg.Health.CPUSample, cfg.Health.DiskPath)
	healthUC := usecase.NewHealthUsecase(collector, cfg, log)

	// 5. Setup Router
	router, err := v1.NewRouter(v1.RouterDeps{
		NotificationUC: notificationUC,
		HealthUC:       healthUC,
		Config:         cfg,
		Logger:         log,
	})
	if err != nil {
		return err
	}

	// 6. Start Server
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		// a slow SMTP relay must still fit inside the write deadline
		WriteTimeout: cfg.Server.WriteTimeout + cfg.SMTP.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		log.Error("Listen failed", "error", err)
		return err
	case <-quit:
	}
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exiting")
	return nil
}
