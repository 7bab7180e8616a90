package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/bft-labs/viocheck/internal/domain"
	"github.com/bft-labs/viocheck/pkg/log"
)

// Config holds CLI configuration for viocheck.
type Config struct {
	LogPath string

	MinFPS      float64
	RequiredFPS float64

	Detail   bool
	Strict   bool
	LogLevel string
}

// DefaultConfig returns a Config with default values. LogPath has no
// default and must come from a flag, argument, env var, or config file.
func DefaultConfig() Config {
	th := domain.DefaultThresholds()
	return Config{
		MinFPS:      th.MinFPS,
		RequiredFPS: th.RequiredFPS,
		LogLevel:    "info",
	}
}

// Thresholds returns the verdict thresholds carried by the config.
func (c Config) Thresholds() domain.Thresholds {
	return domain.Thresholds{MinFPS: c.MinFPS, RequiredFPS: c.RequiredFPS}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.LogPath == "" {
		return fmt.Errorf("%w: log file path is required (argument, --log, or VIOCHECK_LOG)", domain.ErrInvalidConfig)
	}
	if c.MinFPS <= 0 {
		return fmt.Errorf("%w: min fps must be positive", domain.ErrInvalidConfig)
	}
	if c.RequiredFPS <= 0 {
		return fmt.Errorf("%w: required fps must be positive", domain.ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q: %v", domain.ErrInvalidConfig, c.LogLevel, err)
	}
	return nil
}

// configSetter applies values while respecting flag precedence: a value is
// only written when the corresponding flag was not set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloatFromString parses an env value. Non-positive values are ignored.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
