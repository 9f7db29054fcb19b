package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version and Commit are stamped at build time via -ldflags.
var (
	Version = "dev"
	Commit  = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fngen version",
	Run: func(cmd *cobra.Command, args []string) {
		v := Version
		if Commit != "" {
			v += " (" + Commit + ")"
		}
		fmt.Println("fngen", v)
	},
}
