// File: format_test.go
// Title: Log Format Tests
// Description: Tests for format parsing and the output of each formatter.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with formatter tests
// - 2026-10-19 v0.2.0: Sorted field order, run ID output

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func testEntry() *Entry {
	e := NewEntry(LevelInfo, "run finished")
	e.Timestamp = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	e.Logger = "uwu"
	e.RunID = "0f8fad5b-d9cb-469f-a165-70867728950e"
	e.Fields = Fields{"zeta": 1, "alpha": "a"}
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{" console ", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatConsole, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	e := testEntry()
	e.Error = errors.New("boom")
	e.Duration = 1500 * time.Microsecond

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if data["run_id"] != e.RunID {
		t.Errorf("run_id = %v", data["run_id"])
	}
	if data["error"] != "boom" {
		t.Errorf("error = %v, want boom", data["error"])
	}
	if data["duration_ms"] != 1.5 {
		t.Errorf("duration_ms = %v, want 1.5", data["duration_ms"])
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "12:00:00 [INF] {uwu} (run=0f8fad5b) run finished [alpha=a zeta=1]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", string(out), want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	out, _ := f.Format(testEntry())
	if !strings.HasPrefix(string(out), LevelInfo.Color()) {
		t.Errorf("console output should start with the level color, got %q", string(out))
	}

	f.DisableColors = true
	out, _ = f.Format(testEntry())
	if strings.Contains(string(out), "\033[") {
		t.Errorf("colors disabled but output has escapes: %q", string(out))
	}
}

func TestLogfmtFormatter(t *testing.T) {
	out, err := NewLogfmtFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	s := string(out)
	for _, want := range []string{`level=info`, `message="run finished"`, `alpha="a" zeta=1`} {
		if !strings.Contains(s, want) {
			t.Errorf("logfmt output %q missing %q", s, want)
		}
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "*log.JSONFormatter"},
		{FormatText, "*log.TextFormatter"},
		{FormatConsole, "*log.ConsoleFormatter"},
		{FormatLogfmt, "*log.LogfmtFormatter"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got := GetFormatter(tt.format)
			if name := typeName(got); name != tt.want {
				t.Errorf("GetFormatter(%v) = %s, want %s", tt.format, name, tt.want)
			}
		})
	}
}

func typeName(f Formatter) string {
	switch f.(type) {
	case *JSONFormatter:
		return "*log.JSONFormatter"
	case *TextFormatter:
		return "*log.TextFormatter"
	case *ConsoleFormatter:
		return "*log.ConsoleFormatter"
	case *LogfmtFormatter:
		return "*log.LogfmtFormatter"
	}
	return "?"
}
