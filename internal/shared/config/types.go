package config

import (
	"fmt"
	"time"
)

type AppConfig struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Version     string `mapstructure:"version" yaml:"version"`
	DeployDate  string `mapstructure:"deploy_date" yaml:"deploy_date"`
	Commit      string `mapstructure:"commit" yaml:"commit"`
	Environment string `mapstructure:"environment" yaml:"environment"`
	Debug       bool   `mapstructure:"debug" yaml:"debug"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host"`
	Port            int    `mapstructure:"port" yaml:"port"`
	Mode            string `mapstructure:"mode" yaml:"mode"`
	ReadTimeout     int    `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     int    `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	URL             string `mapstructure:"url" yaml:"url"`
	AutoMigrate     bool   `mapstructure:"auto_migrate" yaml:"auto_migrate"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"`
	SlowThresholdMs int    `mapstructure:"slow_threshold_ms" yaml:"slow_threshold_ms"`
}

// LoggerConfig configures log output. When OutputPath names a file the
// rotation settings apply.
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost" yaml:"bcrypt_cost"`
}

type SessionConfig struct {
	Store                  string `mapstructure:"store" yaml:"store"`
	TTLHours               int    `mapstructure:"ttl_hours" yaml:"ttl_hours"`
	CleanupIntervalMinutes int    `mapstructure:"cleanup_interval_minutes" yaml:"cleanup_interval_minutes"`
}

func (s *SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

// CleanupInterval is how often expired database sessions are purged; zero disables it.
func (s *SessionConfig) CleanupInterval() time.Duration {
	return time.Duration(s.CleanupIntervalMinutes) * time.Minute
}

type CookieConfig struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Domain   string `mapstructure:"domain" yaml:"domain"`
	Path     string `mapstructure:"path" yaml:"path"`
	Secure   bool   `mapstructure:"secure" yaml:"secure"`
	SameSite string `mapstructure:"same_site" yaml:"same_site"`
}

type AuthConfig struct {
	SecretKey string         `mapstructure:"secret_key" yaml:"secret_key"`
	Password  PasswordConfig `mapstructure:"password" yaml:"password"`
	Session   SessionConfig  `mapstructure:"session" yaml:"session"`
	Cookie    CookieConfig   `mapstructure:"cookie" yaml:"cookie"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	URL      string `mapstructure:"url" yaml:"url"`
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled" yaml:"enabled"`
	Requests      int  `mapstructure:"requests" yaml:"requests"`
	WindowSeconds int  `mapstructure:"window_seconds" yaml:"window_seconds"`
}

func (r *RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

type IngestionConfig struct {
	SourcePath string `mapstructure:"source_path" yaml:"source_path"`
	BatchSize  int    `mapstructure:"batch_size" yaml:"batch_size"`
}

type DashboardConfig struct {
	PageSize          int     `mapstructure:"page_size" yaml:"page_size"`
	HistogramBinHours float64 `mapstructure:"histogram_bin_hours" yaml:"histogram_bin_hours"`
	DisplayTimezone   string  `mapstructure:"display_timezone" yaml:"display_timezone"`
	Notice            string  `mapstructure:"notice" yaml:"notice"`

	// TemplatesDir holds optional .pongo2 files overriding the built-in ones.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}
