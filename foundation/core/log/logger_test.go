// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, derivation, level filtering
//              and coded error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-19 v0.2.0: Run IDs and severity based error levels

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/uwu/foundation/core/error"
)

func newJSONLogger(buf *bytes.Buffer, level Level) *Logger {
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: buf, Name: "test"})
}

func decodeLine(t *testing.T, line string) map[string]interface{} {
	t.Helper()
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(line), &data); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return data
}

func TestNew(t *testing.T) {
	logger := New()
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestLoggerDerivationIsImmutable(t *testing.T) {
	var buf bytes.Buffer
	base := newJSONLogger(&buf, LevelInfo)

	derived := base.WithLevel(LevelDebug).WithField("component", "uwu-parser").WithRunID("run-42")

	if base.GetLevel() != LevelInfo {
		t.Error("WithLevel() should not modify the original logger")
	}
	if _, ok := base.contextFields["component"]; ok {
		t.Error("WithField() should not modify the original logger")
	}
	if base.RunID() != "" {
		t.Error("WithRunID() should not modify the original logger")
	}
	if derived.RunID() != "run-42" {
		t.Errorf("RunID() = %q, want run-42", derived.RunID())
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		logFunc func(*Logger)
		want    bool
	}{
		{"debug filtered at info", LevelInfo, func(l *Logger) { l.Debug("x") }, false},
		{"info passes at info", LevelInfo, func(l *Logger) { l.Info("x") }, true},
		{"warn passes at info", LevelInfo, func(l *Logger) { l.Warn("x") }, true},
		{"info filtered at warn", LevelWarn, func(l *Logger) { l.Info("x") }, false},
		{"error passes at warn", LevelWarn, func(l *Logger) { l.Error("x") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newJSONLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoggerContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, LevelDebug).
		WithField("component", "uwu-lexer").
		WithRunID("run-1")

	logger.Debug("source scanned", Fields{"tokens": 6})

	data := decodeLine(t, strings.TrimSpace(buf.String()))
	if data["component"] != "uwu-lexer" {
		t.Errorf("component = %v, want uwu-lexer", data["component"])
	}
	if data["run_id"] != "run-1" {
		t.Errorf("run_id = %v, want run-1", data["run_id"])
	}
	if data["tokens"] != float64(6) {
		t.Errorf("tokens = %v, want 6", data["tokens"])
	}
	if data["logger"] != "test" {
		t.Errorf("logger = %v, want test", data["logger"])
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "script diagnostic logs at info",
			err:       mdwerror.New("Unexpected character: @").WithCode(mdwerror.CodeLexical).WithLine(2),
			wantLevel: "info",
			wantCode:  "UWU_LEXICAL",
		},
		{
			name:      "config failure logs at error",
			err:       mdwerror.New("bad config").WithCode(mdwerror.CodeInvalidConfig),
			wantLevel: "error",
			wantCode:  "INVALID_CONFIG",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("boom"),
			wantLevel: "error",
			wantCode:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newJSONLogger(&buf, LevelTrace).LogError(tt.err)

			data := decodeLine(t, strings.TrimSpace(buf.String()))
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
			if data["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", data["error_code"], tt.wantCode)
			}
		})
	}
}

func TestLoggerLogErrorLine(t *testing.T) {
	var buf bytes.Buffer
	newJSONLogger(&buf, LevelTrace).LogError(mdwerror.New("x").WithCode(mdwerror.CodeSyntax).WithLine(7))

	data := decodeLine(t, strings.TrimSpace(buf.String()))
	if data["line"] != float64(7) {
		t.Errorf("line = %v, want 7", data["line"])
	}
	if data["error_category"] != "syntax" {
		t.Errorf("error_category = %v, want syntax", data["error_category"])
	}
}

func TestLoggerLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	newJSONLogger(&buf, LevelTrace).LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("NewNop() should not enable any level")
	}
	logger.Error("discarded")
}

func TestSetDefault(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(newJSONLogger(&buf, LevelInfo))
	Info("through the default logger")

	if !strings.Contains(buf.String(), "through the default logger") {
		t.Errorf("default logger output = %q", buf.String())
	}

	SetDefault(nil)
	if GetDefault() == nil {
		t.Error("SetDefault(nil) should keep the previous logger")
	}
}
