// Package config loads the service configuration through viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	EnvPrefix = "CARFINDER"

	ModeScrape = "scrape"
	ModeMock   = "mock"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is the service configuration
type Config struct {
	Port   int
	Log    LogConfig
	Source SourceConfig
	DB     DBConfig
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level       string
	Development bool
}

// SourceConfig configures listing retrieval
type SourceConfig struct {
	Mode           string
	MarktplaatsURL string
	MobileDeURL    string
	Timeout        time.Duration
	Rate           float64
	Burst          int
	Limit          int
}

// DBConfig configures the saved search database
type DBConfig struct {
	DSN string
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// SetDefaults registers default values and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 3000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("source.mode", ModeScrape)
	v.SetDefault("source.marktplaats_url", "https://www.marktplaats.nl/l/auto-s/")
	v.SetDefault("source.mobilede_url", "https://suchen.mobile.de/fahrzeuge/search.html")
	v.SetDefault("source.timeout", "20s")
	v.SetDefault("source.rate", 1.0)
	v.SetDefault("source.burst", 1)
	v.SetDefault("source.limit", 20)
	v.SetDefault("db.dsn", "carfinder.db")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The bare PORT variable is the conventional listening-port override.
	_ = v.BindEnv("port", EnvPrefix+"_PORT", "PORT")
}

// ReadFile merges the configuration file at path into v. An empty path is a
// no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load builds and validates a Config from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port: v.GetInt("port"),
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Development: v.GetBool("log.development"),
		},
		Source: SourceConfig{
			Mode:           strings.ToLower(v.GetString("source.mode")),
			MarktplaatsURL: v.GetString("source.marktplaats_url"),
			MobileDeURL:    v.GetString("source.mobilede_url"),
			Timeout:        v.GetDuration("source.timeout"),
			Rate:           v.GetFloat64("source.rate"),
			Burst:          v.GetInt("source.burst"),
			Limit:          v.GetInt("source.limit"),
		},
		DB: DBConfig{
			DSN: v.GetString("db.dsn"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalid, c.Port)
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	switch c.Source.Mode {
	case ModeScrape, ModeMock:
	default:
		return fmt.Errorf("%w: source.mode %q, want %q or %q", ErrInvalid, c.Source.Mode, ModeScrape, ModeMock)
	}
	if c.Source.Mode == ModeScrape && c.Source.MarktplaatsURL == "" {
		return fmt.Errorf("%w: source.marktplaats_url is empty", ErrInvalid)
	}
	if c.Source.Mode == ModeScrape && c.Source.MobileDeURL == "" {
		return fmt.Errorf("%w: source.mobilede_url is empty", ErrInvalid)
	}
	if c.Source.Timeout <= 0 {
		return fmt.Errorf("%w: source.timeout must be positive", ErrInvalid)
	}
	if c.Source.Limit < 1 {
		return fmt.Errorf("%w: source.limit must be at least 1", ErrInvalid)
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("%w: db.dsn is empty", ErrInvalid)
	}
	return nil
}

// NewLogger builds the zap logger described by c.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}
