// Package commands implements the CLI commands for the cull tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/cull/internal/build"
	"go.trai.ch/cull/internal/core/domain"
	"go.trai.ch/cull/internal/core/ports"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for cull.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	FilterLock(ctx context.Context) (domain.Report, error)
	SynthesizeStubs(ctx context.Context) (domain.Report, error)
	PruneVendor(ctx context.Context) (domain.Report, error)
	Clean(ctx context.Context) error
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cull",
		Short:         "Filter dependency lock documents and synthesize stub packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringP("chdir", "C", "", "Run as if started in this directory")
	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON instead of the pretty format")
	rootCmd.PersistentPreRunE = c.preRun

	rootCmd.AddCommand(c.newFilterCmd())
	rootCmd.AddCommand(c.newStubCmd())
	rootCmd.AddCommand(c.newPruneVendorCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// preRun applies the persistent flags before any subcommand runs.
func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		if s, ok := c.logger.(interface{ SetJSON(bool) }); ok {
			s.SetJSON(true)
		}
	}

	dir, _ := cmd.Flags().GetString("chdir")
	if dir == "" {
		return nil
	}
	if err := os.Chdir(dir); err != nil {
		return zerr.Wrap(err, "failed to change directory")
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
