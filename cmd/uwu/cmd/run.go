// ============================================================================
// uwu - Interpreter fuer die UwU-Skriptsprache
// ============================================================================
//
// Package:     cmd
// Description: CLI command that runs a script, optionally on every change
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	mdwerror "github.com/msto63/uwu/foundation/core/error"
	mdwlog "github.com/msto63/uwu/foundation/core/log"
	"github.com/msto63/uwu/internal/watch"
	"github.com/spf13/cobra"
)

var (
	runWatch bool
	runEcho  bool
)

var runCmd = &cobra.Command{
	Use:   "run <datei>",
	Short: "Fuehrt ein Skript aus",
	Long: `Fuehrt ein Skript aus. Ausgaben von impwimir und Fehlermeldungen
erscheinen auf stdout, Exit-Status 1 bei Fehlern.

Mit --watch wird das Skript nach jeder Aenderung erneut ausgefuehrt,
bis Ctrl+C gedrueckt wird.

Beispiele:
  uwu run hola.uwu
  uwu run --echo hola.uwu
  uwu run --watch hola.uwu
  cat hola.uwu | uwu run -`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false,
		"Skript bei Aenderungen erneut ausfuehren")
	runCmd.Flags().BoolVarP(&runEcho, "echo", "e", false,
		"Wert jeder Anweisung ausgeben (ueberschreibt interpreter.echo_results)")
}

func runRun(cmd *cobra.Command, args []string) error {
	path := args[0]
	echo := cfg.Interpreter.EchoResults
	if cmd.Flags().Changed("echo") {
		echo = runEcho
	}

	if !runWatch {
		return runOnce(cmd, path, echo)
	}

	if path == "-" {
		return mdwerror.New("--watch needs a file, not stdin").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.run")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchScript(ctx, cmd, path, echo)
}

func runOnce(cmd *cobra.Command, path string, echo bool) error {
	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	report, err := newEngine(cmd.OutOrStdout(), echo).Run(source)
	if err != nil {
		return err
	}
	return exitStatus(report)
}

// watchScript runs the script now and after every change until ctx ends.
// Script errors never stop the watch.
func watchScript(ctx context.Context, cmd *cobra.Command, path string, echo bool) error {
	out := cmd.OutOrStdout()
	rerun := func() {
		if err := runOnce(cmd, path, echo); err != nil && !errors.Is(err, errScriptFailed) {
			logger.ErrorWithErr("Script run failed", err, mdwlog.Fields{"file": path})
			printError(out, err)
		}
	}

	rerun()
	w := watch.New(path, cfg.Watch.Debounce.Duration, logger)
	return w.Run(ctx, func() {
		writeSeparator(out, path)
		rerun()
	})
}

func writeSeparator(out io.Writer, path string) {
	fmt.Fprintf(out, "\n== %s geaendert ==\n", filepath.Base(path))
}
