package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Version is overridden at build time with -ldflags "-X go-landing-mailer/config.Version=..."
var Version = "1.0.0"

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	SMTP   SMTPConfig   `mapstructure:"smtp"`
	Notify NotifyConfig `mapstructure:"notify"`
	Health HealthConfig `mapstructure:"health"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr returns host:port for the HTTP listener
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SMTPConfig describes the outbound relay. The sender address doubles as the login name.
type SMTPConfig struct {
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	Sender        string        `mapstructure:"sender"`
	Password      string        `mapstructure:"password"`
	Recipient     string        `mapstructure:"recipient"`
	AuthMechanism string        `mapstructure:"auth_mechanism"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type NotifyConfig struct {
	// SurfaceFailures appends ?status=... to the post-submit redirect
	SurfaceFailures bool `mapstructure:"surface_failures"`
}

type HealthConfig struct {
	CPUThreshold    float64       `mapstructure:"cpu_threshold"`
	MemoryThreshold float64       `mapstructure:"memory_threshold"`
	CPUSample       time.Duration `mapstructure:"cpu_sample"`
	DiskPath        string        `mapstructure:"disk_path"`
}

// CORSConfig lists the origins allowed to call the routes. Empty means same-host only,
// so deployments behind a proxy that rewrites Host must list the public origin.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// envBindings maps config keys to the comma separated environment variables that may set them.
// The first variable found wins, so canonical names come before legacy ones.
var envBindings = map[string]string{
	"app.name":                "APP_NAME",
	"app.version":             "APP_VERSION",
	"app.environment":         "APP_ENV,FLASK_ENV",
	"app.debug":               "APP_DEBUG,FLASK_DEBUG",
	"server.host":             "SERVER,HOST",
	"server.port":             "PORT",
	"server.read_timeout":     "HTTP_READ_TIMEOUT",
	"server.write_timeout":    "HTTP_WRITE_TIMEOUT",
	"smtp.host":               "SMTP,SMTP_HOST",
	"smtp.port":               "PMAIL,SMTP_PORT",
	"smtp.sender":             "SEMAIL",
	"smtp.password":           "EPASS,SMTP_PASSWORD",
	"smtp.recipient":          "REMAIL",
	"smtp.auth_mechanism":     "SMTP_AUTH",
	"smtp.timeout":            "SMTP_TIMEOUT",
	"notify.surface_failures": "NOTIFY_SURFACE_FAILURES",
	"health.cpu_threshold":    "HEALTH_CPU_THRESHOLD",
	"health.memory_threshold": "HEALTH_MEMORY_THRESHOLD",
	"health.cpu_sample":       "HEALTH_CPU_SAMPLE",
	"health.disk_path":        "HEALTH_DISK_PATH",
	"cors.allowed_origins":    "CORS_ALLOWED_ORIGINS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "landing-mailer")
	v.SetDefault("app.version", Version)
	v.SetDefault("app.environment", "production")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("smtp.host", "smtp.office365.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.sender", "servers@encontrack.com")
	v.SetDefault("smtp.password", "") // never hardcode the credential
	v.SetDefault("smtp.recipient", "luis.geronimo@encontrack.com")
	v.SetDefault("smtp.auth_mechanism", "login")
	v.SetDefault("smtp.timeout", 15*time.Second)

	v.SetDefault("notify.surface_failures", false)

	v.SetDefault("health.cpu_threshold", 90.0)
	v.SetDefault("health.memory_threshold", 90.0)
	v.SetDefault("health.cpu_sample", 200*time.Millisecond)
	v.SetDefault("health.disk_path", "/")

	v.SetDefault("cors.allowed_origins", []string{})
}

// LoadConfig resolves the process configuration once. A missing SMTP credential is
// not an error here; delivery fails later, on the first send attempt.
func LoadConfig() (*Config, error) {
	// .env is only present on developer machines
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	for key, envs := range envBindings {
		args := append([]string{key}, strings.Split(envs, ",")...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	// debug follows the environment unless set explicitly
	if !v.IsSet("app.debug") {
		v.Set("app.debug", v.GetString("app.environment") == "development")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.CORS.AllowedOrigins = splitOrigins(cfg.CORS.AllowedOrigins)
	cfg.SMTP.AuthMechanism = strings.ToLower(strings.TrimSpace(cfg.SMTP.AuthMechanism))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Server.Port)
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("invalid PMAIL %d", c.SMTP.Port)
	}
	switch c.SMTP.AuthMechanism {
	case "login", "plain":
	default:
		return fmt.Errorf("unsupported SMTP_AUTH %q (want login or plain)", c.SMTP.AuthMechanism)
	}
	if c.SMTP.Timeout <= 0 {
		return fmt.Errorf("SMTP_TIMEOUT must be positive")
	}
	return nil
}

// splitOrigins flattens comma separated values coming from a single env var
func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, origin := range strings.Split(item, ",") {
			origin = strings.TrimRight(strings.TrimSpace(origin), "/")
			if origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}
