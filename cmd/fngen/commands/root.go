// Package commands provides the CLI commands for the fngen tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fngen",
	Short: "fnkit arity-variant source generator",
	Long: `fngen regenerates the bounded arity families of the fnkit package:
Function2..Function9, Predicate2..Predicate7 and Try.Of2..Of9.

The one-argument variants are handwritten exemplars carrying the doc
comments and combinator shapes; fngen stamps the remaining arities out of
the same templates so the combinator logic is never hand-duplicated.

Usage:
  fngen generate                Regenerate *_gen.go in the current directory
  fngen generate -o ../..       Regenerate into the repository root
  fngen version                 Print version`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}
