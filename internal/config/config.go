// Package config loads rangechain run settings from a YAML file and
// RANGECHAIN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rangechain/chain"
)

// EnvPrefix prefixes every environment override, e.g. RANGECHAIN_MODE.
const EnvPrefix = "RANGECHAIN_"

// Query modes.
const (
	ModePoints = "points"
	ModeRanges = "ranges"
)

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Sentinel errors for configuration validation.
var (
	ErrInvalidMode    = errors.New("config: mode must be points or ranges")
	ErrInvalidWorkers = errors.New("config: workers must be positive")
	ErrInvalidLevel   = errors.New("config: unknown log level")
	ErrInvalidFormat  = errors.New("config: log format must be json or console")
	ErrEmptyCategory  = errors.New("config: start and terminal categories must be set")
)

// Config holds all rangechain run settings.
type Config struct {
	// Input is the almanac path; "-" or empty reads stdin.
	Input string `yaml:"input" env:"INPUT"`

	// Mode selects point or range queries for the default command.
	Mode string `yaml:"mode" env:"MODE"`

	// Start and Terminal name the chain endpoints.
	Start    string `yaml:"start" env:"START"`
	Terminal string `yaml:"terminal" env:"TERMINAL"`

	// Workers is point-mode parallelism.
	Workers int `yaml:"workers" env:"WORKERS"`

	Log LogConfig `yaml:"log" envPrefix:"LOG_"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"FORMAT"` // json, console
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Input:    "-",
		Mode:     ModePoints,
		Start:    chain.DefaultStart,
		Terminal: chain.DefaultTerminal,
		Workers:  1,
		Log: LogConfig{
			Level:  "info",
			Format: FormatJSON,
		},
	}
}

// Load layers defaults, the YAML file at path (skipped when path is empty)
// and environment overrides, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Mode != ModePoints && c.Mode != ModeRanges {
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	if c.Start == "" || c.Terminal == "" {
		return ErrEmptyCategory
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.Log.Level)
	}
	if c.Log.Format != FormatJSON && c.Log.Format != FormatConsole {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Log.Format)
	}

	return nil
}
