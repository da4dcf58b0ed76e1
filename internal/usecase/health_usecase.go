package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go-landing-mailer/config"
	"go-landing-mailer/internal/domain"
)

type healthUsecase struct {
	metrics   domain.SystemMetrics
	app       config.AppConfig
	limits    config.HealthConfig
	startedAt time.Time
	now       func() time.Time
	log       *slog.Logger
}

func NewHealthUsecase(metrics domain.SystemMetrics, cfg *config.Config, log *slog.Logger) domain.HealthUsecase {
	return &healthUsecase{
		metrics:   metrics,
		app:       cfg.App,
		limits:    cfg.Health,
		startedAt: time.Now(),
		now:       time.Now,
		log:       log,
	}
}

// Check classifies the host as healthy, degraded (over a usage threshold) or
// unhealthy (metrics unavailable).
func (u *healthUsecase) Check(ctx context.Context) domain.HealthReport {
	report := domain.HealthReport{
		Status:    domain.StatusHealthy,
		Timestamp: u.now().UTC(),
		Version:   u.app.Version,
	}

	snap, err := u.metrics.Snapshot(ctx)
	if err != nil {
		u.log.Error("Health check failed to collect system metrics", "error", err)
		report.Status = domain.StatusUnhealthy
		report.Error = err.Error()
		return report
	}
	report.System = &snap

	if snap.CPUPercent > u.limits.CPUThreshold {
		report.Reasons = append(report.Reasons, fmt.Sprintf("cpu usage %.1f%% above %.0f%%", snap.CPUPercent, u.limits.CPUThreshold))
	}
	if snap.MemoryPercent > u.limits.MemoryThreshold {
		report.Reasons = append(report.Reasons, fmt.Sprintf("memory usage %.1f%% above %.0f%%", snap.MemoryPercent, u.limits.MemoryThreshold))
	}
	if len(report.Reasons) > 0 {
		report.Status = domain.StatusDegraded
		u.log.Warn("Health check degraded", "reasons", report.Reasons)
	}

	return report
}

func (u *healthUsecase) Status(ctx context.Context) domain.StatusReport {
	now := u.now()
	return domain.StatusReport{
		APIStatus:     "running",
		Version:       u.app.Version,
		Timestamp:     now.UTC(),
		UptimeSeconds: int64(now.Sub(u.startedAt).Seconds()),
	}
}

func (u *healthUsecase) Info(ctx context.Context) domain.InfoReport {
	return domain.InfoReport{
		Application: u.app.Name,
		Version:     u.app.Version,
		Environment: u.app.Environment,
		Platform:    u.metrics.Platform(ctx),
		Timestamp:   u.now().UTC(),
	}
}

func (u *healthUsecase) Metrics(ctx context.Context) (domain.SystemSnapshot, error) {
	snap, err := u.metrics.Snapshot(ctx)
	if err != nil {
		u.log.Error("Failed to collect system metrics", "error", err)
		return domain.SystemSnapshot{}, err
	}
	return snap, nil
}
