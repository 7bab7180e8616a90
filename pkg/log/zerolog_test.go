package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(&buf, zerolog.InfoLevel)

	logger.Debug("hidden", String("k", "v"))
	if buf.Len() != 0 {
		t.Fatalf("debug entry written at info level: %q", buf.String())
	}

	logger.Warn("visible", Int("line", 7), Err(errors.New("boom")))
	out := buf.String()
	if !strings.Contains(out, "visible") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.Contains(out, "line=7") {
		t.Errorf("output %q missing int field", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("output %q missing error field", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "", want: zerolog.InfoLevel},
		{name: "debug", want: zerolog.DebugLevel},
		{name: "warn", want: zerolog.WarnLevel},
		{name: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Error("ParseLevel() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
