package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/uwu/foundation/core/error"
	mdwlog "github.com/msto63/uwu/foundation/core/log"
)

// Environment variables read by LoadFromEnv
const (
	EnvConfigPath = "UWU_CONFIG"
	EnvLogLevel   = "UWU_LOG_LEVEL"
)

// Config holds the complete interpreter configuration
type Config struct {
	Interpreter InterpreterConfig `toml:"interpreter" yaml:"interpreter"`
	Logging     LoggingConfig     `toml:"logging" yaml:"logging"`
	REPL        REPLConfig        `toml:"repl" yaml:"repl"`
	Watch       WatchConfig       `toml:"watch" yaml:"watch"`
}

// InterpreterConfig holds pipeline limits and output settings
type InterpreterConfig struct {
	MaxLoopIterations int  `toml:"max_loop_iterations" yaml:"max_loop_iterations"`
	MaxSourceBytes    int  `toml:"max_source_bytes" yaml:"max_source_bytes"`
	EchoResults       bool `toml:"echo_results" yaml:"echo_results"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	// Output is "stderr", "stdout" or a file path
	Output string `toml:"output" yaml:"output"`
}

// REPLConfig holds interactive shell settings
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistorySize int    `toml:"history_size" yaml:"history_size"`
	// HistoryFile is empty when history is not persisted
	HistoryFile string `toml:"history_file" yaml:"history_file"`
}

// WatchConfig holds file watcher settings
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load config").WithDetail("path", path)
	}
	return cfg, nil
}

// Parse decodes configuration data. ext is the file extension including
// the dot: ".toml", ".yaml" or ".yml".
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return nil, invalid(err, ext)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, invalid(err, ext)
		}
	default:
		return nil, mdwerror.Newf("unsupported config format %q", ext).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Parse")
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func invalid(err error, ext string) *mdwerror.Error {
	return mdwerror.Wrap(err, "failed to parse config").
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Parse").
		WithDetail("format", strings.TrimPrefix(ext, "."))
}

// DefaultPaths returns the locations LoadFromEnv searches, in order
func DefaultPaths() []string {
	return []string{
		"./uwu.toml",
		"./configs/uwu.toml",
		filepath.Join(os.Getenv("HOME"), ".config/uwu/config.toml"),
	}
}

// LoadFromEnv loads configuration from the UWU_CONFIG environment variable
// or the first existing default path. Without any file the defaults are
// used. UWU_LOG_LEVEL overrides the configured log level.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Interpreter
	if c.Interpreter.MaxLoopIterations == 0 {
		c.Interpreter.MaxLoopIterations = 100000
	}
	if c.Interpreter.MaxSourceBytes == 0 {
		c.Interpreter.MaxSourceBytes = 1 << 20
	}

	// Logging
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}

	// REPL
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "uwu> "
	}
	if c.REPL.HistorySize == 0 {
		c.REPL.HistorySize = 100
	}

	// Watch
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 300 * time.Millisecond
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	if c.Logging.Output != "stderr" && c.Logging.Output != "stdout" {
		c.Logging.Output = os.ExpandEnv(c.Logging.Output)
	}
	c.REPL.HistoryFile = os.ExpandEnv(c.REPL.HistoryFile)
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	fail := func(field string, value interface{}, reason string) error {
		return mdwerror.Newf("invalid %s: %s", field, reason).
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.Validate").
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if c.Interpreter.MaxLoopIterations < 0 {
		return fail("interpreter.max_loop_iterations", c.Interpreter.MaxLoopIterations, "must not be negative")
	}
	if c.Interpreter.MaxSourceBytes < 0 {
		return fail("interpreter.max_source_bytes", c.Interpreter.MaxSourceBytes, "must not be negative")
	}
	if _, err := mdwlog.ParseLevel(c.Logging.Level); err != nil {
		return fail("logging.level", c.Logging.Level, "unknown level")
	}
	if _, err := mdwlog.ParseFormat(c.Logging.Format); err != nil {
		return fail("logging.format", c.Logging.Format, "unknown format")
	}
	if c.REPL.HistorySize < 0 {
		return fail("repl.history_size", c.REPL.HistorySize, "must not be negative")
	}
	if c.Watch.Debounce.Duration < 0 {
		return fail("watch.debounce", c.Watch.Debounce.String(), "must not be negative")
	}
	return nil
}
