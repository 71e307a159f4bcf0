package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/tana/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tana version %s (%s, %s)\n",
				build.Version, build.Commit, build.Date)
		},
	}
}
