package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				LogPath:     "/data/vio.log",
				MinFPS:      20,
				RequiredFPS: 60,
				Detail:      &trueVal,
				Strict:      &falseVal,
				LogLevel:    "warn",
			},
			changed: map[string]bool{},
			initial: Config{Strict: true},
			expected: Config{
				LogPath:     "/data/vio.log",
				MinFPS:      20,
				RequiredFPS: 60,
				Detail:      true,
				Strict:      false,
				LogLevel:    "warn",
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				LogPath: "/config/vio.log",
				MinFPS:  20,
			},
			changed: map[string]bool{"log": true},
			initial: Config{LogPath: "/flag/vio.log", MinFPS: 15},
			expected: Config{
				LogPath: "/flag/vio.log", // unchanged because flag was set
				MinFPS:  20,
			},
		},
		{
			name:       "empty file leaves defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	tomlContent := `
log = "/tmp/vio.log"
min_fps = 12.5
required_fps = 30.0
detail = true
log_level = "debug"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.LogPath != "/tmp/vio.log" {
		t.Errorf("LogPath = %v, want /tmp/vio.log", fc.LogPath)
	}
	if fc.MinFPS != 12.5 {
		t.Errorf("MinFPS = %v, want 12.5", fc.MinFPS)
	}
	if fc.RequiredFPS != 30 {
		t.Errorf("RequiredFPS = %v, want 30", fc.RequiredFPS)
	}
	if fc.Detail == nil || !*fc.Detail {
		t.Errorf("Detail = %v, want true", fc.Detail)
	}
	if fc.Strict != nil {
		t.Errorf("Strict = %v, want nil", *fc.Strict)
	}
	if fc.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", fc.LogLevel)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.toml")

	invalidContent := `
log = "/test"
this is not valid toml
`
	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFileConfig(configPath)
	if err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".viocheck") {
		t.Errorf("DefaultConfigPath() = %v, should contain .viocheck", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
