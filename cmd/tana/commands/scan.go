package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tana/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Derive the index from disk once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			return c.app.Scan(cmd.Context(), app.ScanOptions{Root: root})
		},
	}
}
