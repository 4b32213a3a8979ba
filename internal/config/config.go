// Package config provides configuration management for ProcureFlow.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Security SecurityConfig `mapstructure:"security"`
	Approval ApprovalConfig `mapstructure:"approval"`
	River    RiverConfig    `mapstructure:"river"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// A single pgx pool is shared by Ent, River, and the atomic write paths.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// SecurityConfig contains security-related settings.
// The session secret is auto-generated on first boot if missing.
type SecurityConfig struct {
	SessionSecret   string        `mapstructure:"session_secret"`
	SessionLifetime time.Duration `mapstructure:"session_lifetime"`
	JWTIssuer       string        `mapstructure:"jwt_issuer"`
}

// ApprovalConfig contains approval-core settings.
type ApprovalConfig struct {
	// DefaultRequiredLevels is the fallback level count when no active
	// policy matches a request amount. Must be >= 1; a lower value is a
	// fatal configuration error at startup (PolicyMismatch).
	DefaultRequiredLevels int `mapstructure:"default_required_levels"`

	// LockTimeout bounds per-request row lock acquisition. On expiry the
	// caller receives a retryable Busy failure instead of blocking.
	LockTimeout time.Duration `mapstructure:"lock_timeout"`

	// PendingReminderAfter is how long a request may sit PENDING before the
	// reminder job re-notifies approvers.
	PendingReminderAfter time.Duration `mapstructure:"pending_reminder_after"`
}

// RiverConfig contains River Queue settings.
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
	NotificationRetention       time.Duration `mapstructure:"notification_retention"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	GeneralPoolSize int `mapstructure:"general_pool_size"`
}

// Load reads configuration from file and environment variables.
// Standard environment variables without prefix (DATABASE_URL, SERVER_PORT,
// LOG_LEVEL, APPROVAL_DEFAULT_REQUIRED_LEVELS, ...).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/procureflow")

	// Maps nested config: database.max_conns → DATABASE_MAX_CONNS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.ensureSecrets(); err != nil {
		return nil, fmt.Errorf("ensure secrets: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Security.SessionSecret == "" {
		return fmt.Errorf("security.session_secret must not be empty")
	}
	if len(c.Security.SessionSecret) < 32 {
		return fmt.Errorf("security.session_secret must be at least 32 characters")
	}
	if c.Approval.DefaultRequiredLevels < 1 {
		return fmt.Errorf("approval.default_required_levels must be at least 1")
	}
	if c.Approval.LockTimeout <= 0 {
		return fmt.Errorf("approval.lock_timeout must be positive")
	}
	return nil
}

// ensureSecrets auto-generates missing secrets on first boot.
func (c *Config) ensureSecrets() error {
	if c.Security.SessionSecret == "" {
		secret, err := generateSecureRandomHex(32)
		if err != nil {
			return fmt.Errorf("generate session secret: %w", err)
		}
		c.Security.SessionSecret = secret
	}
	return nil
}

func generateSecureRandomHex(nBytes int) (string, error) {
	buf := make([]byte, nBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("server.cors_origins", []string{"*"})

	// Database
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "procureflow")
	v.SetDefault("database.database", "procureflow")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "30m")
	v.SetDefault("database.auto_migrate", false)

	// Logging
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Security
	v.SetDefault("security.session_lifetime", "12h")
	v.SetDefault("security.jwt_issuer", "procureflow")

	// Approval core
	v.SetDefault("approval.default_required_levels", 2)
	v.SetDefault("approval.lock_timeout", "3s")
	v.SetDefault("approval.pending_reminder_after", "72h")

	// River
	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.completed_job_retention_period", "24h")
	v.SetDefault("river.notification_retention", "2160h") // 90 days

	// Worker pool
	v.SetDefault("worker.general_pool_size", 100)
}
