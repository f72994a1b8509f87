package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/uwu/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"milliseconds", "300ms", 300 * time.Millisecond, false},
		{"complex", "1m30s", 90 * time.Second, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{300 * time.Millisecond}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "300ms" {
		t.Errorf("MarshalText() = %v, want 300ms", string(result))
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Interpreter.MaxLoopIterations != 100000 {
		t.Errorf("Interpreter.MaxLoopIterations = %v, want 100000", cfg.Interpreter.MaxLoopIterations)
	}
	if cfg.Interpreter.MaxSourceBytes != 1<<20 {
		t.Errorf("Interpreter.MaxSourceBytes = %v, want %v", cfg.Interpreter.MaxSourceBytes, 1<<20)
	}
	if cfg.Interpreter.EchoResults {
		t.Errorf("Interpreter.EchoResults = true, want false")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %v, want warn", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %v, want console", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("Logging.Output = %v, want stderr", cfg.Logging.Output)
	}
	if cfg.REPL.Prompt != "uwu> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "uwu> ")
	}
	if cfg.REPL.HistorySize != 100 {
		t.Errorf("REPL.HistorySize = %v, want 100", cfg.REPL.HistorySize)
	}
	if cfg.REPL.HistoryFile != "" {
		t.Errorf("REPL.HistoryFile = %q, want empty", cfg.REPL.HistoryFile)
	}
	if cfg.Watch.Debounce.Duration != 300*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 300ms", cfg.Watch.Debounce.Duration)
	}
}

func TestConfig_applyDefaults_KeepsValues(t *testing.T) {
	cfg := &Config{
		Interpreter: InterpreterConfig{MaxLoopIterations: 10},
		REPL:        REPLConfig{Prompt: "> "},
	}
	cfg.applyDefaults()

	if cfg.Interpreter.MaxLoopIterations != 10 {
		t.Errorf("Interpreter.MaxLoopIterations = %v, want 10", cfg.Interpreter.MaxLoopIterations)
	}
	if cfg.REPL.Prompt != "> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "> ")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "uwu.toml", `
[interpreter]
max_loop_iterations = 500
echo_results = true

[logging]
level = "debug"
format = "json"

[repl]
prompt = "owo> "
history_size = 20

[watch]
debounce = "1s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Interpreter.MaxLoopIterations != 500 {
		t.Errorf("Interpreter.MaxLoopIterations = %v, want 500", cfg.Interpreter.MaxLoopIterations)
	}
	if !cfg.Interpreter.EchoResults {
		t.Errorf("Interpreter.EchoResults = false, want true")
	}
	if cfg.Interpreter.MaxSourceBytes != 1<<20 {
		t.Errorf("Interpreter.MaxSourceBytes = %v, want default", cfg.Interpreter.MaxSourceBytes)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.REPL.Prompt != "owo> " || cfg.REPL.HistorySize != 20 {
		t.Errorf("REPL = %+v", cfg.REPL)
	}
	if cfg.Watch.Debounce.Duration != time.Second {
		t.Errorf("Watch.Debounce = %v, want 1s", cfg.Watch.Debounce.Duration)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "uwu.yaml", `
interpreter:
  max_source_bytes: 2048
logging:
  level: error
  output: stdout
watch:
  debounce: 50ms
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Interpreter.MaxSourceBytes != 2048 {
		t.Errorf("Interpreter.MaxSourceBytes = %v, want 2048", cfg.Interpreter.MaxSourceBytes)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Output != "stdout" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Watch.Debounce.Duration != 50*time.Millisecond {
		t.Errorf("Watch.Debounce = %v, want 50ms", cfg.Watch.Debounce.Duration)
	}
	if cfg.REPL.Prompt != "uwu> " {
		t.Errorf("REPL.Prompt = %q, want default", cfg.REPL.Prompt)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		code mdwerror.Code
	}{
		{"unsupported extension", "uwu.ini", "x=1", mdwerror.CodeInvalidConfig},
		{"broken toml", "uwu.toml", "[interpreter\n", mdwerror.CodeInvalidConfig},
		{"broken yaml", "uwu.yml", "logging: [", mdwerror.CodeInvalidConfig},
		{"unknown level", "uwu.toml", "[logging]\nlevel = \"loud\"\n", mdwerror.CodeValidationFailed},
		{"unknown format", "uwu.toml", "[logging]\nformat = \"xml\"\n", mdwerror.CodeValidationFailed},
		{"negative history", "uwu.toml", "[repl]\nhistory_size = -1\n", mdwerror.CodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.body))
			if err == nil {
				t.Fatalf("Load() error = nil, want %v", tt.code)
			}
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("Load() code = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load() error = %v, want NOT_FOUND", err)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UWU_TEST_DIR", dir)
	path := writeFile(t, "uwu.toml", "[repl]\nhistory_file = \"$UWU_TEST_DIR/history.json\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := dir + "/history.json"; cfg.REPL.HistoryFile != want {
		t.Errorf("REPL.HistoryFile = %q, want %q", cfg.REPL.HistoryFile, want)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "custom.toml", "[interpreter]\nmax_loop_iterations = 7\n")
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Interpreter.MaxLoopIterations != 7 {
		t.Errorf("Interpreter.MaxLoopIterations = %v, want 7", cfg.Interpreter.MaxLoopIterations)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want debug from %s", cfg.Logging.Level, EnvLogLevel)
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv("HOME", t.TempDir())

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %v, want default warn", cfg.Logging.Level)
	}
}

func TestLoadFromEnv_BadLevel(t *testing.T) {
	t.Setenv(EnvConfigPath, writeFile(t, "uwu.toml", ""))
	t.Setenv(EnvLogLevel, "shouting")

	if _, err := LoadFromEnv(); !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
		t.Errorf("LoadFromEnv() error = %v, want VALIDATION_FAILED", err)
	}
}
