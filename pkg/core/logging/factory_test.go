package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/uwu/foundation/core/error"
	mdwlog "github.com/msto63/uwu/foundation/core/log"
	"github.com/msto63/uwu/pkg/core/config"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("uwu")

	if cfg.Name != "uwu" {
		t.Errorf("Name = %q, want %q", cfg.Name, "uwu")
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %q, want %q", cfg.Level, "warn")
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want %q", cfg.Format, "console")
	}
	if cfg.Output != "stderr" {
		t.Errorf("Output = %q, want %q", cfg.Output, "stderr")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig("uwu", config.LoggingConfig{Level: "debug", Format: "json", Output: "stdout"})

	if cfg.Name != "uwu" || cfg.Level != "debug" || cfg.Format != "json" || cfg.Output != "stdout" {
		t.Errorf("FromConfig() = %+v", cfg)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"fatal", mdwlog.LevelFatal},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, closer, err := NewLogger(LoggerConfig{Level: tt.level, Format: "text", Writer: &bytes.Buffer{}})
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			defer closer.Close()

			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("GetLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewLogger_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  LoggerConfig
	}{
		{"unknown level", LoggerConfig{Level: "loud", Format: "json"}},
		{"unknown format", LoggerConfig{Level: "info", Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, closer, err := NewLogger(tt.cfg)
			if err == nil {
				t.Fatal("NewLogger() error = nil, want error")
			}
			if logger != nil {
				t.Errorf("NewLogger() logger = %v, want nil", logger)
			}
			if closer == nil {
				t.Error("NewLogger() closer = nil, want no-op closer")
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("NewLogger() code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidConfig)
			}
		})
	}
}

func TestNewLogger_Writer(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewLogger(LoggerConfig{Name: "uwu", Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("info message missing: %s", out)
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uwu.log")

	for i := 0; i < 2; i++ {
		logger, closer, err := NewLogger(LoggerConfig{Level: "info", Format: "logfmt", Output: path})
		if err != nil {
			t.Fatalf("NewLogger() error = %v", err)
		}
		logger.Info("line written")
		if err := closer.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got := strings.Count(string(data), "line written"); got != 2 {
		t.Errorf("log file has %d entries, want 2 (append mode)", got)
	}
}

func TestNewLogger_FileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "uwu.log")

	_, _, err := NewLogger(LoggerConfig{Level: "info", Format: "text", Output: path})
	if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("NewLogger() error = %v, want CONFIG_ERROR", err)
	}
}

func TestNewSimpleLogger(t *testing.T) {
	logger := NewSimpleLogger("uwu")
	if logger == nil {
		t.Fatal("NewSimpleLogger() returned nil")
	}
	if got := logger.GetLevel(); got != mdwlog.LevelWarn {
		t.Errorf("GetLevel() = %v, want %v", got, mdwlog.LevelWarn)
	}
}
