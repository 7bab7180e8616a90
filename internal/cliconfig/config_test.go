package cliconfig

import (
	"errors"
	"testing"

	"github.com/bft-labs/viocheck/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MinFPS != 15 {
		t.Errorf("MinFPS = %v, want 15", cfg.MinFPS)
	}
	if cfg.RequiredFPS != 30 {
		t.Errorf("RequiredFPS = %v, want 30", cfg.RequiredFPS)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LogPath != "" {
		t.Errorf("LogPath = %v, want empty", cfg.LogPath)
	}
	if cfg.Strict {
		t.Error("Strict = true, want false")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  Config{LogPath: "/tmp/log.txt", MinFPS: 15, RequiredFPS: 30, LogLevel: "info"},
			wantErr: false,
		},
		{
			name:    "empty log level means info",
			config:  Config{LogPath: "/tmp/log.txt", MinFPS: 15, RequiredFPS: 30},
			wantErr: false,
		},
		{
			name:    "missing log path",
			config:  Config{MinFPS: 15, RequiredFPS: 30, LogLevel: "info"},
			wantErr: true,
		},
		{
			name:    "zero min fps",
			config:  Config{LogPath: "/tmp/log.txt", RequiredFPS: 30, LogLevel: "info"},
			wantErr: true,
		},
		{
			name:    "negative required fps",
			config:  Config{LogPath: "/tmp/log.txt", MinFPS: 15, RequiredFPS: -1, LogLevel: "info"},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			config:  Config{LogPath: "/tmp/log.txt", MinFPS: 15, RequiredFPS: 30, LogLevel: "chatty"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error but got nil")
				}
				if !errors.Is(err, domain.ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Thresholds(t *testing.T) {
	cfg := Config{MinFPS: 20, RequiredFPS: 60}
	th := cfg.Thresholds()

	if th.MinFPS != 20 || th.RequiredFPS != 60 {
		t.Errorf("Thresholds() = %+v, want {20 60}", th)
	}
}
