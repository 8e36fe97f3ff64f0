package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPruneVendorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune-vendor",
		Short: "Delete excluded package directories from the vendor tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.PruneVendor(cmd.Context())
			return err
		},
	}
}
