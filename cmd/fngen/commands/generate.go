package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"martianoff/fnkit/internal/gen"
)

var (
	generateOutput string
	generatePkg    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the *_gen.go arity files",
	Long: `Regenerate function_gen.go, predicate_gen.go and try_gen.go from the
templates in internal/gen.

Examples:
  fngen generate                # write into the current directory
  fngen generate -o . -p fnkit  # explicit output dir and package name`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", ".", "Directory to write the generated files to")
	generateCmd.Flags().StringVarP(&generatePkg, "pkg", "p", "fnkit", "Package name for the generated files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	files, err := gen.All(generatePkg)
	if err != nil {
		return err
	}
	for _, file := range files {
		path := filepath.Join(generateOutput, file.Name)
		if err := os.WriteFile(path, file.Source, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("Generated %s\n", path)
	}
	return nil
}
