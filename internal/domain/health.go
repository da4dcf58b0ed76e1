package domain

import (
	"context"
	"time"
)

// SystemSnapshot holds usage percentages (0-100) for the host the process runs on
type SystemSnapshot struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskPercent   float64 `json:"disk_percent"`
}

// PlatformInfo describes the host for the /info endpoint
type PlatformInfo struct {
	OS              string `json:"os"`
	Arch            string `json:"arch"`
	Platform        string `json:"platform,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty"`
	KernelVersion   string `json:"kernel_version,omitempty"`
	GoVersion       string `json:"go_version"`
}

// SystemMetrics is implemented by pkg/sysmetrics
type SystemMetrics interface {
	Snapshot(ctx context.Context) (SystemSnapshot, error)
	Platform(ctx context.Context) PlatformInfo
}

type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusDegraded  HealthStatus = "degraded"
	StatusUnhealthy HealthStatus = "unhealthy"
)

// HealthReport is the body of GET /health
type HealthReport struct {
	Status    HealthStatus    `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Version   string          `json:"version"`
	System    *SystemSnapshot `json:"system"`
	Reasons   []string        `json:"reasons,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// Healthy reports whether the probe should answer 200
func (r HealthReport) Healthy() bool {
	return r.Status == StatusHealthy
}

// StatusReport is the body of GET /status
type StatusReport struct {
	APIStatus     string    `json:"api_status"`
	Version       string    `json:"version"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds int64     `json:"uptime_seconds"`
}

// InfoReport is the body of GET /info
type InfoReport struct {
	Application string       `json:"application"`
	Version     string       `json:"version"`
	Environment string       `json:"environment"`
	Platform    PlatformInfo `json:"platform"`
	Timestamp   time.Time    `json:"timestamp"`
}

// HealthUsecase serves the probe and observability endpoints
type HealthUsecase interface {
	Check(ctx context.Context) HealthReport
	Status(ctx context.Context) StatusReport
	Info(ctx context.Context) InfoReport
	Metrics(ctx context.Context) (SystemSnapshot, error)
}
