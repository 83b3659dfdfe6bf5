package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at link time with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// version works without a readable config.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "treectl %s (commit: %s)\n", Version, Commit)
		},
	}
}
