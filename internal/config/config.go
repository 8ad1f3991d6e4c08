package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ServiceName = "inventory-service"
	EnvPrefix   = "INVENTORY"
)

type Config struct {
	Addr            string          `mapstructure:"addr"`
	Seed            bool            `mapstructure:"seed"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
	Log             LogConfig       `mapstructure:"log"`
	RateLimit       RateLimitConfig `mapstructure:"ratelimit"`
	Redis           RedisConfig     `mapstructure:"redis"`
	Ban             BanConfig       `mapstructure:"ban"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	RPS             float64       `mapstructure:"rps"`
	Burst           int           `mapstructure:"burst"`
	VisitorTTL      time.Duration `mapstructure:"visitor_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RedisConfig enables the ban service when Addr is set.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type BanConfig struct {
	MaxStrikes      int           `mapstructure:"max_strikes"`
	StrikeWindow    time.Duration `mapstructure:"strike_window"`
	Duration        time.Duration `mapstructure:"duration"`
	SummaryInterval time.Duration `mapstructure:"summary_interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("seed", true)
	v.SetDefault("shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.rps", 5.0)
	v.SetDefault("ratelimit.burst", 10)
	v.SetDefault("ratelimit.visitor_ttl", 5*time.Minute)
	v.SetDefault("ratelimit.cleanup_interval", time.Minute)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ban.max_strikes", 5)
	v.SetDefault("ban.strike_window", time.Minute)
	v.SetDefault("ban.duration", 15*time.Minute)
	v.SetDefault("ban.summary_interval", 24*time.Hour)
}

// Load reads configuration from defaults, the optional file at path and
// INVENTORY_* environment variables, in increasing order of precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("shutdown_timeout cannot be negative"))
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			errs = append(errs, errors.New("ratelimit.rps must be greater than zero"))
		}
		if c.RateLimit.Burst <= 0 {
			errs = append(errs, errors.New("ratelimit.burst must be greater than zero"))
		}
		if c.RateLimit.VisitorTTL <= 0 || c.RateLimit.CleanupInterval <= 0 {
			errs = append(errs, errors.New("ratelimit durations must be greater than zero"))
		}
	}
	if c.BanEnabled() {
		if c.Ban.MaxStrikes <= 0 {
			errs = append(errs, errors.New("ban.max_strikes must be greater than zero"))
		}
		if c.Ban.StrikeWindow <= 0 || c.Ban.Duration <= 0 || c.Ban.SummaryInterval <= 0 {
			errs = append(errs, errors.New("ban durations must be greater than zero"))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// BanEnabled reports whether the Redis-backed ban service should run.
// Bans are only issued for rate limit violations.
func (c *Config) BanEnabled() bool {
	return c.Redis.Addr != "" && c.RateLimit.Enabled
}
