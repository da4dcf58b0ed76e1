// Package sysmetrics reads host CPU, memory and disk usage through gopsutil.
package sysmetrics

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go-landing-mailer/internal/domain"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Collector implements domain.SystemMetrics
type Collector struct {
	cpuSample time.Duration
	diskPath  string
}

// NewCollector samples CPU over cpuSample and reports disk usage of the
// filesystem holding diskPath.
func NewCollector(cpuSample time.Duration, diskPath string) *Collector {
	if diskPath == "" {
		diskPath = "/"
	}
	return &Collector{
		cpuSample: cpuSample,
		diskPath:  diskPath,
	}
}

func (c *Collector) Snapshot(ctx context.Context) (domain.SystemSnapshot, error) {
	var snap domain.SystemSnapshot

	cpuPercents, err := cpu.PercentWithContext(ctx, c.cpuSample, false)
	if err != nil {
		return snap, fmt.Errorf("cpu usage: %w", err)
	}
	if len(cpuPercents) == 0 {
		return snap, fmt.Errorf("cpu usage: no samples")
	}
	snap.CPUPercent = cpuPercents[0]

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return snap, fmt.Errorf("memory usage: %w", err)
	}
	snap.MemoryPercent = vm.UsedPercent

	usage, err := disk.UsageWithContext(ctx, c.diskPath)
	if err != nil {
		return snap, fmt.Errorf("disk usage of %s: %w", c.diskPath, err)
	}
	snap.DiskPercent = usage.UsedPercent

	return snap, nil
}

// Platform never fails: host details are best effort on top of runtime values
func (c *Collector) Platform(ctx context.Context) domain.PlatformInfo {
	info := domain.PlatformInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		GoVersion: runtime.Version(),
	}
	if h, err := host.InfoWithContext(ctx); err == nil {
		info.Platform = h.Platform
		info.PlatformVersion = h.PlatformVersion
		info.KernelVersion = h.KernelVersion
	}
	return info
}
