package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	mdwerror "github.com/msto63/uwu/foundation/core/error"
	mdwlog "github.com/msto63/uwu/foundation/core/log"
	"github.com/msto63/uwu/foundation/uwu"
	"github.com/msto63/uwu/pkg/core/config"
	"github.com/msto63/uwu/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// errScriptFailed signals a set error flag; the diagnostics are already on
// the output, so nothing else is printed
var errScriptFailed = errors.New("script reported errors")

// Loaded in PersistentPreRunE
var (
	cfg       *config.Config
	logger    *mdwlog.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "uwu",
	Short: "uwu - Interpreter fuer die UwU-Skriptsprache",
	Long: `uwu fuehrt Skripte der UwU-Sprache aus.

Befehle:
  tokenize  - Token-Liste eines Skripts
  parse     - Syntaxbaum eines Skripts
  run       - Skript ausfuehren
  check     - Skript pruefen ohne Ausgabe
  repl      - Interaktive Sitzung
  version   - Version anzeigen

Ein Dateiname "-" liest das Skript von stdin.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
	if err != nil && !errors.Is(err, errScriptFailed) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $UWU_CONFIG, ./uwu.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug-Logging auf stderr")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, logCloser, err = logging.NewLogger(logging.FromConfig("uwu", cfg.Logging))
	if err != nil {
		return err
	}
	mdwlog.SetDefault(logger)

	logger.Debug("Configuration loaded", mdwlog.Fields{
		"command": cmd.Name(),
		"config":  cfgFile,
		"level":   cfg.Logging.Level,
	})
	return nil
}

// newEngine builds an engine from the loaded configuration
func newEngine(out io.Writer, echo bool) *uwu.Engine {
	return uwu.New(uwu.Options{
		Logger:            logger,
		Output:            out,
		MaxLoopIterations: cfg.Interpreter.MaxLoopIterations,
		MaxSourceBytes:    cfg.Interpreter.MaxSourceBytes,
		EchoResults:       echo,
	})
}

// readSource reads the script at path, or stdin for "-"
func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", mdwerror.Wrap(err, "failed to read stdin").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.readSource")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return "", mdwerror.Wrap(err, "failed to read script").
			WithCode(code).
			WithOperation("cmd.readSource").
			WithDetail("path", path)
	}
	return string(data), nil
}

// runMode runs one pipeline mode on the script named by the only argument
func runMode(mode uwu.Mode) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		source, err := readSource(cmd, args[0])
		if err != nil {
			return err
		}

		report, err := newEngine(cmd.OutOrStdout(), false).Execute(mode, source)
		if err != nil {
			return err
		}
		return exitStatus(report)
	}
}

func exitStatus(report *uwu.Report) error {
	if report.ErrorFlag {
		return errScriptFailed
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Fehler: %v\n", err)
}
