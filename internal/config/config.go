package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/countdown/internal/logger"
)

// Config holds the runtime settings of the countdown binary.
type Config struct {
	// TickInterval is the period between countdown ticks.
	TickInterval time.Duration `yaml:"tick_interval"`
	// LogLevel is the minimum level written to stderr.
	LogLevel string `yaml:"log_level"`
	// DefaultDuration is applied as the initial duration in seconds; 0 leaves it unset.
	DefaultDuration int `yaml:"default_duration"`
	// ObserverBuffer is the channel capacity of the renderer's snapshot subscription.
	ObserverBuffer int `yaml:"observer_buffer"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "countdown-settings.yaml"

	// DefaultTickInterval is the countdown resolution.
	DefaultTickInterval = time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultObserverBuffer is the snapshot channel capacity.
	DefaultObserverBuffer = 8

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeDuration is returned for a negative default duration.
	errNegativeDuration = errors.New("default duration must not be negative")
	// errNegativeBuffer is returned for a negative observer buffer.
	errNegativeBuffer = errors.New("observer buffer must not be negative")
	// errUnknownLogLevel is returned when the log level cannot be parsed.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TickInterval:   DefaultTickInterval,
		LogLevel:       DefaultLogLevel,
		ObserverBuffer: DefaultObserverBuffer,
	}
}

// Load reads settings from path. A missing file yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills unset fields with defaults and rejects values that cannot be used.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	if cfg.DefaultDuration < 0 {
		return errNegativeDuration
	}

	if cfg.ObserverBuffer < 0 {
		return errNegativeBuffer
	}

	if cfg.ObserverBuffer == 0 {
		cfg.ObserverBuffer = DefaultObserverBuffer
	}

	return nil
}
