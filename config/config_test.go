package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads; viper treats empty values as unset
func clearEnv(t *testing.T) {
	t.Helper()
	for _, envs := range envBindings {
		for _, name := range strings.Split(envs, ",") {
			t.Setenv(name, "")
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "smtp.office365.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "servers@encontrack.com", cfg.SMTP.Sender)
	assert.Equal(t, "luis.geronimo@encontrack.com", cfg.SMTP.Recipient)
	assert.Equal(t, "login", cfg.SMTP.AuthMechanism)
	assert.Equal(t, 15*time.Second, cfg.SMTP.Timeout)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.False(t, cfg.App.Debug)
	assert.False(t, cfg.Notify.SurfaceFailures)
	assert.Equal(t, 90.0, cfg.Health.CPUThreshold)
	assert.Equal(t, 90.0, cfg.Health.MemoryThreshold)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigMissingCredentialIsNotAnError(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.SMTP.Password)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("SMTP", "smtp.example.com")
	t.Setenv("PMAIL", "2525")
	t.Setenv("SEMAIL", "noreply@example.com")
	t.Setenv("EPASS", "s3cret")
	t.Setenv("REMAIL", "support@example.com")
	t.Setenv("SMTP_AUTH", "PLAIN")
	t.Setenv("SMTP_TIMEOUT", "3s")
	t.Setenv("NOTIFY_SURFACE_FAILURES", "true")
	t.Setenv("HEALTH_CPU_THRESHOLD", "75.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "noreply@example.com", cfg.SMTP.Sender)
	assert.Equal(t, "s3cret", cfg.SMTP.Password)
	assert.Equal(t, "support@example.com", cfg.SMTP.Recipient)
	assert.Equal(t, "plain", cfg.SMTP.AuthMechanism)
	assert.Equal(t, 3*time.Second, cfg.SMTP.Timeout)
	assert.True(t, cfg.Notify.SurfaceFailures)
	assert.Equal(t, 75.5, cfg.Health.CPUThreshold)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigLegacyAliases(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "10.0.0.1")
	t.Setenv("SMTP_PASSWORD", "from-alias")
	t.Setenv("FLASK_ENV", "development")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.1", cfg.Server.Host)
	assert.Equal(t, "from-alias", cfg.SMTP.Password)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.True(t, cfg.App.Debug, "debug follows the development environment")
}

func TestLoadConfigCanonicalNameWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER", "192.168.1.1")
	t.Setenv("HOST", "10.0.0.1")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.1", cfg.Server.Host)
}

func TestLoadConfigExplicitDebugOverridesEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("APP_DEBUG", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.App.Debug)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"non numeric port", "PORT", "http"},
		{"port out of range", "PORT", "70000"},
		{"bad smtp port", "PMAIL", "0"},
		{"unknown auth mechanism", "SMTP_AUTH", "cram-md5"},
		{"bad timeout", "SMTP_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
