// ============================================================================
// uwu - Interpreter fuer die UwU-Skriptsprache
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive REPL
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"io"

	"github.com/msto63/uwu/internal/tui/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Startet eine interaktive Sitzung",
	Long: `Startet eine interaktive UwU-Sitzung im Terminal.

Variablen bleiben zwischen den Eingaben erhalten. Der Wert jeder
Anweisung wird angezeigt, Fehler erscheinen rot.

Tastenkuerzel:
  Enter       Eingabe ausfuehren
  Alt+Enter   Neue Zeile
  ↑/↓         Eingabe-Historie
  PgUp/PgDn   Scrollen
  Ctrl+L      Ausgabe leeren
  Ctrl+R      Sitzung zuruecksetzen
  Ctrl+C      Beenden`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	return repl.Run(repl.Config{
		Engine:      newEngine(io.Discard, true),
		Prompt:      cfg.REPL.Prompt,
		HistorySize: cfg.REPL.HistorySize,
		HistoryFile: cfg.REPL.HistoryFile,
		Logger:      logger,
	})
}
