package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/ticketsla/ticketsla/internal/shared/config"
	"github.com/ticketsla/ticketsla/internal/shared/constants"
	"github.com/ticketsla/ticketsla/internal/shared/version"
)

// DefaultSecretKey is the development placeholder; production refuses it.
const DefaultSecretKey = "change-me-in-production"

type Config struct {
	App       sharedConfig.AppConfig       `mapstructure:"app" yaml:"app"`
	Server    sharedConfig.ServerConfig    `mapstructure:"server" yaml:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database" yaml:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger" yaml:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth" yaml:"auth"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis" yaml:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Ingestion sharedConfig.IngestionConfig `mapstructure:"ingestion" yaml:"ingestion"`
	Dashboard sharedConfig.DashboardConfig `mapstructure:"dashboard" yaml:"dashboard"`
	Metrics   sharedConfig.MetricsConfig   `mapstructure:"metrics" yaml:"metrics"`
}

// IsProduction reports whether the production profile is active.
func (c *Config) IsProduction() bool {
	return c.App.Environment == constants.EnvProduction
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

var defaultSearchPaths = []string{"./configs", "../configs", "../../configs"}

// Load resolves the profile and loads configuration from the default search paths.
func Load(env string) (*Config, error) {
	return LoadFrom(env, defaultSearchPaths...)
}

// LoadFrom loads configs/config.yaml and configs/config.<profile>.yaml from the
// given directories (both optional), then applies environment overrides.
// Precedence, highest first: environment, profile file, base file, profile defaults.
func LoadFrom(env string, paths ...string) (*Config, error) {
	profile, err := ResolveProfile(env)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("TICKETSLA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	applyProfileDefaults(v, profile)
	if err := bindEnv(v, profile); err != nil {
		return nil, err
	}

	v.SetConfigName("config")
	if err := readOptional(v, v.ReadInConfig); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	v.SetConfigName("config." + profile)
	if err := readOptional(v, v.MergeInConfig); err != nil {
		return nil, fmt.Errorf("failed to read %s config file: %w", profile, err)
	}

	v.Set("app.environment", profile)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.App.Commit == "" {
		cfg.App.Commit = version.ResolveCommit(profile == constants.EnvProduction, constants.UnknownCommit, constants.UnavailableCommit)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &cfg
	appConfigMu.Unlock()

	return &cfg, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// ResolveProfile normalises env into one of the three profiles. An empty env
// falls back to the ENV and APP_ENV variables, then to development.
func ResolveProfile(env string) (string, error) {
	if env == "" {
		env = os.Getenv("ENV")
	}
	if env == "" {
		env = os.Getenv("APP_ENV")
	}

	switch strings.ToLower(strings.TrimSpace(env)) {
	case "", "dev", constants.EnvDevelopment:
		return constants.EnvDevelopment, nil
	case "test", constants.EnvTesting:
		return constants.EnvTesting, nil
	case "prod", constants.EnvProduction:
		return constants.EnvProduction, nil
	default:
		return "", fmt.Errorf("unknown environment %q (want development, testing or production)", env)
	}
}

func readOptional(v *viper.Viper, read func() error) error {
	err := read()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return err
	}
	return nil
}

// bindEnv maps the unprefixed variables operators already use.
func bindEnv(v *viper.Viper, profile string) error {
	dbVars := []string{"TICKETSLA_DATABASE_URL", "DATABASE_URL"}
	if profile == constants.EnvTesting {
		dbVars = []string{"TICKETSLA_DATABASE_URL", "TEST_DATABASE_URL"}
	}

	bindings := map[string][]string{
		"database.url":    dbVars,
		"auth.secret_key": {"TICKETSLA_AUTH_SECRET_KEY", "SECRET_KEY"},
		"redis.url":       {"TICKETSLA_REDIS_URL", "REDIS_URL"},
		"app.version":     {"TICKETSLA_APP_VERSION", "APP_VERSION"},
		"app.deploy_date": {"TICKETSLA_APP_DEPLOY_DATE", "DEPLOY_DATE"},
		"app.commit":      {"TICKETSLA_APP_COMMIT", "GIT_COMMIT"},
		"server.port":     {"TICKETSLA_SERVER_PORT", "PORT"},
	}

	for key, vars := range bindings {
		if err := v.BindEnv(append([]string{key}, vars...)...); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "ticketsla")
	v.SetDefault("app.version", constants.DefaultVersion)
	v.SetDefault("app.deploy_date", "")
	v.SetDefault("app.commit", "")
	v.SetDefault("app.environment", constants.EnvDevelopment)
	v.SetDefault("app.debug", false)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.url", "")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.slow_threshold_ms", 500)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.max_size_mb", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age_days", 30)
	v.SetDefault("logger.compress", true)

	v.SetDefault("auth.secret_key", DefaultSecretKey)
	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.session.store", "database")
	v.SetDefault("auth.session.ttl_hours", 24)
	v.SetDefault("auth.session.cleanup_interval_minutes", 60)
	v.SetDefault("auth.cookie.name", constants.DefaultSessionName)
	v.SetDefault("auth.cookie.domain", "")
	v.SetDefault("auth.cookie.path", "/")
	v.SetDefault("auth.cookie.secure", false)
	v.SetDefault("auth.cookie.same_site", "Lax")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.url", "")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 10)
	v.SetDefault("rate_limit.window_seconds", 60)

	v.SetDefault("ingestion.source_path", constants.DefaultSourceFile)
	v.SetDefault("ingestion.batch_size", 500)

	v.SetDefault("dashboard.page_size", constants.DefaultPageSize)
	v.SetDefault("dashboard.histogram_bin_hours", 4)
	v.SetDefault("dashboard.display_timezone", "UTC")
	v.SetDefault("dashboard.notice", "")
	v.SetDefault("dashboard.templates_dir", "")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// applyProfileDefaults layers the profile's defaults over the base ones.
func applyProfileDefaults(v *viper.Viper, profile string) {
	switch profile {
	case constants.EnvDevelopment:
		v.SetDefault("app.debug", true)
		v.SetDefault("server.mode", "debug")
		v.SetDefault("logger.level", "debug")
		v.SetDefault("database.url", "sqlite://ticketsla.db")
		v.SetDefault("database.auto_migrate", true)
	case constants.EnvTesting:
		v.SetDefault("server.mode", "test")
		v.SetDefault("database.url", "sqlite://file::memory:?cache=shared")
		v.SetDefault("database.auto_migrate", true)
		v.SetDefault("auth.password.bcrypt_cost", 4)
		v.SetDefault("rate_limit.enabled", false)
	case constants.EnvProduction:
		v.SetDefault("logger.format", "json")
		v.SetDefault("auth.cookie.secure", true)
	}
}

func validate(cfg *Config) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("database url is required in %s (set DATABASE_URL)", cfg.App.Environment)
	}
	if cfg.IsProduction() && (cfg.Auth.SecretKey == "" || cfg.Auth.SecretKey == DefaultSecretKey) {
		return errors.New("SECRET_KEY must be set to a non-default value in production")
	}

	switch cfg.Auth.Session.Store {
	case "database", "redis":
	default:
		return fmt.Errorf("auth.session.store must be database or redis, got %q", cfg.Auth.Session.Store)
	}
	if cfg.Auth.Session.Store == "redis" && !cfg.Redis.Enabled {
		return errors.New("auth.session.store is redis but redis.enabled is false")
	}

	if cfg.Auth.Session.TTLHours <= 0 {
		cfg.Auth.Session.TTLHours = 24
	}
	if cfg.Dashboard.PageSize <= 0 {
		cfg.Dashboard.PageSize = constants.DefaultPageSize
	}
	if cfg.Dashboard.HistogramBinHours <= 0 {
		cfg.Dashboard.HistogramBinHours = 4
	}
	if cfg.Ingestion.BatchSize <= 0 {
		cfg.Ingestion.BatchSize = 500
	}
	return nil
}
