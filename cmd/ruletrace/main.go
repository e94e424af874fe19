package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ruletrace/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ruletrace",
	Short: "Trace recursive-descent grammar rules",
	Long:  `ruletrace runs an instrumented expression grammar and renders the rule call tree`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
