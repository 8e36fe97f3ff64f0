package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFilterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter",
		Short: "Rewrite the lock document, dropping excluded packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.FilterLock(cmd.Context())
			return err
		},
	}
}
