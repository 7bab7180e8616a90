package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML form of Config.
type FileConfig struct {
	LogPath     string  `toml:"log"`
	MinFPS      float64 `toml:"min_fps"`
	RequiredFPS float64 `toml:"required_fps"`
	Detail      *bool   `toml:"detail"`
	Strict      *bool   `toml:"strict"`
	LogLevel    string  `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config %q: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.viocheck/config.toml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".viocheck", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping explicitly set flags.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("log", fc.LogPath, &cfg.LogPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setFloat("min-fps", fc.MinFPS, &cfg.MinFPS)
	s.setFloat("required-fps", fc.RequiredFPS, &cfg.RequiredFPS)

	s.setBool("detail", fc.Detail, &cfg.Detail)
	s.setBool("strict", fc.Strict, &cfg.Strict)
}

// FileExists reports whether something exists at p.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
