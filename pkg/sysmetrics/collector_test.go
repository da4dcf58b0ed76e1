package sysmetrics_test

import (
	"context"
	"os"
	"testing"
	"time"

	"go-landing-mailer/pkg/sysmetrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotOnHost(t *testing.T) {
	c := sysmetrics.NewCollector(50*time.Millisecond, os.TempDir())

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)

	for name, pct := range map[string]float64{
		"cpu":    snap.CPUPercent,
		"memory": snap.MemoryPercent,
		"disk":   snap.DiskPercent,
	} {
		assert.GreaterOrEqual(t, pct, 0.0, name)
		assert.LessOrEqual(t, pct, 100.0, name)
	}
}

func TestSnapshotHonoursCancelledContext(t *testing.T) {
	c := sysmetrics.NewCollector(time.Second, "/")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Snapshot(ctx)
	assert.Error(t, err)
}

func TestPlatform(t *testing.T) {
	info := sysmetrics.NewCollector(0, "").Platform(context.Background())

	assert.NotEmpty(t, info.OS)
	assert.NotEmpty(t, info.Arch)
	assert.NotEmpty(t, info.GoVersion)
}
