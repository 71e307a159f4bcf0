package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tana/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the library and keep the index in sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			addr, _ := cmd.Flags().GetString("addr")
			output, _ := cmd.Flags().GetString("output")
			noServe, _ := cmd.Flags().GetBool("no-serve")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Root:    root,
				Addr:    addr,
				Output:  output,
				NoServe: noServe,
			})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "HTTP API listen address (overrides config)")
	cmd.Flags().StringP("output", "o", "auto", "Render mode: auto, dashboard, plain, ci")
	cmd.Flags().Bool("no-serve", false, "Disable the HTTP API")
	return cmd
}
