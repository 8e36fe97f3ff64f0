package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newStubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stub",
		Short: "Synthesize stub packages for every excluded lock entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.SynthesizeStubs(cmd.Context())
			return err
		},
	}
}
