package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RunMigrations  bool   `toml:"run_migrations"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// browser origins allowed through CORS
	AllowedOrigins []string `toml:"allowed_origins"`
	// gamification
	StatsTimezone               string `toml:"stats_timezone"`
	WriteRateLimitAllowedPerMin int    `toml:"write_rate_limit_allowed_per_min"`
	ChallengeRotationSchedule   string `toml:"challenge_rotation_schedule"`
	WeeklyBoardRefreshSchedule  string `toml:"weekly_board_refresh_schedule"`
	WeeklyBoardCacheSizeMB      int    `toml:"weekly_board_cache_size_mb"`
	// nutrition
	DefaultMaintenanceKcal   int `toml:"default_maintenance_kcal"`
	WeightUnlockRequiredDays int `toml:"weight_unlock_required_days"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for the given env,
// with defaults filled in for anything left empty.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.StatsTimezone == "" {
		c.StatsTimezone = "UTC"
	}
	if c.WriteRateLimitAllowedPerMin == 0 {
		c.WriteRateLimitAllowedPerMin = 120
	}
	if c.ChallengeRotationSchedule == "" {
		// rotation is idempotent, so hourly also covers a missed monday
		c.ChallengeRotationSchedule = "0 * * * *"
	}
	if c.WeeklyBoardRefreshSchedule == "" {
		c.WeeklyBoardRefreshSchedule = "*/5 * * * *"
	}
	if c.WeeklyBoardCacheSizeMB == 0 {
		c.WeeklyBoardCacheSizeMB = 8
	}
	if c.DefaultMaintenanceKcal == 0 {
		c.DefaultMaintenanceKcal = 2000
	}
	if c.WeightUnlockRequiredDays == 0 {
		c.WeightUnlockRequiredDays = 7
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"https://app.fitquest.io"}
	}
}

func (c *Config) Validate() error {
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
		return errors.New("postgres host, port and db name must be set")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("stats timezone: %w", err)
	}
	return nil
}

// Location is the timezone in which workout days and challenge weeks are counted.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.StatsTimezone)
}
