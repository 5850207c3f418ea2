package commands

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(os.Stdout, "wcapi %s (commit %s, built %s, %s)\n",
				version, commit, date, runtime.Version())
		},
	}
}
