// SPDX-License-Identifier: MIT

// Package config loads the calculator's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matcalc/matrix"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "matcalc.yaml"

// Config holds all matcalc configuration.
type Config struct {
	// Display of matrices in the shell and in saved collections
	Format FormatConfig `yaml:"format"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Session persistence
	Session SessionConfig `yaml:"session"`
}

// FormatConfig mirrors matrix.FormatOption.
type FormatConfig struct {
	ElementSeparator string `yaml:"element_separator" validate:"required"`
	RowSeparator     string `yaml:"row_separator" validate:"required"`
	Precision        int    `yaml:"precision" validate:"gte=-1,lte=17"` // -1 = shortest round-trip
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// SessionConfig names optional collection dumps loaded at start and written
// at exit. Empty disables the step.
type SessionConfig struct {
	LoadOnStart string `yaml:"load_on_start"`
	SaveOnExit  string `yaml:"save_on_exit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format: FormatConfig{
			ElementSeparator: matrix.DefaultElementSeparator,
			RowSeparator:     matrix.DefaultRowSeparator,
			Precision:        matrix.DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error: the
// defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// FormatOptions converts the format section into matrix options.
func (c *Config) FormatOptions() []matrix.FormatOption {
	return []matrix.FormatOption{
		matrix.WithElementSeparator(c.Format.ElementSeparator),
		matrix.WithRowSeparator(c.Format.RowSeparator),
		matrix.WithPrecision(c.Format.Precision),
	}
}

// ZapConfig builds the logger configuration. verbose forces debug level.
func (c *Config) ZapConfig(verbose bool) (zap.Config, error) {
	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc, nil
}
