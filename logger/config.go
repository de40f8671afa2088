package logger

import (
	"fmt"
	"slices"

	"github.com/kbukum/seqkit/errors"
)

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller    bool   `yaml:"caller" mapstructure:"caller"`
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal"}
	validFormats = []string{"json", "console", FormatPretty}
	validOutputs = []string{"stdout", "stderr"}
)

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
	c.Timestamp = true
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	if !slices.Contains(validLevels, c.Level) {
		return errors.InvalidInput("logging.level", fmt.Sprintf("must be one of %v (got: %s)", validLevels, c.Level))
	}
	if !slices.Contains(validFormats, c.Format) {
		return errors.InvalidInput("logging.format", fmt.Sprintf("must be one of %v (got: %s)", validFormats, c.Format))
	}
	if !slices.Contains(validOutputs, c.Output) {
		return errors.InvalidInput("logging.output", fmt.Sprintf("must be one of %v (got: %s)", validOutputs, c.Output))
	}
	return nil
}
