package cliconfig

import "os"

// ApplyEnvConfig applies VIOCHECK_* environment variables, skipping
// explicitly set flags. It fails on values that cannot be parsed.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log", os.Getenv("VIOCHECK_LOG"), &cfg.LogPath)
	s.setString("log-level", os.Getenv("VIOCHECK_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setFloatFromString("min-fps", os.Getenv("VIOCHECK_MIN_FPS"), &cfg.MinFPS); err != nil {
		return err
	}
	if err := s.setFloatFromString("required-fps", os.Getenv("VIOCHECK_REQUIRED_FPS"), &cfg.RequiredFPS); err != nil {
		return err
	}

	s.setBoolFromString("detail", os.Getenv("VIOCHECK_DETAIL"), &cfg.Detail)
	s.setBoolFromString("strict", os.Getenv("VIOCHECK_STRICT"), &cfg.Strict)

	return nil
}
