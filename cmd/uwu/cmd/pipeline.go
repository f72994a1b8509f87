package cmd

import (
	"github.com/msto63/uwu/foundation/uwu"
	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <datei>",
	Short: "Zeigt die Token-Liste eines Skripts",
	Long: `Zerlegt ein Skript in Tokens und gibt je Token eine Zeile aus:
Art, Lexem und Literal. Lexikalische Fehler erscheinen an ihrer Stelle.

Beispiele:
  uwu tokenize hola.uwu
  echo 'x = 1' | uwu tokenize -`,
	Args: cobra.ExactArgs(1),
	RunE: runMode(uwu.ModeTokenize),
}

var parseCmd = &cobra.Command{
	Use:   "parse <datei>",
	Short: "Zeigt den Syntaxbaum eines Skripts",
	Long: `Parst ein Skript und gibt jede Anweisung in Klammerschreibweise aus,
z.B. (+ 1.0 (* 2.0 3.0)).

Beispiele:
  uwu parse hola.uwu`,
	Args: cobra.ExactArgs(1),
	RunE: runMode(uwu.ModeParse),
}

var checkCmd = &cobra.Command{
	Use:   "check <datei>",
	Short: "Prueft ein Skript ohne Ausgabe",
	Long: `Fuehrt ein Skript vollstaendig aus, verwirft aber seine Ausgabe und meldet
nur, ob es fehlerfrei war. Exit-Status 1 bei Fehlern.

Beispiele:
  uwu check hola.uwu`,
	Args: cobra.ExactArgs(1),
	RunE: runMode(uwu.ModeCheck),
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
}
