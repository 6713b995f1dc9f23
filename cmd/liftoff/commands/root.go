// Package commands implements the CLI commands for the liftoff tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.liftoff.dev/liftoff/internal/adapters/config"
	"go.liftoff.dev/liftoff/internal/app"
)

// AppProvider resolves the application once a command needs it. The context
// carries the persistent flag settings, so configuration is only read for
// commands that use it.
type AppProvider func(ctx context.Context) (*app.App, error)

// CLI represents the command line interface for liftoff.
type CLI struct {
	provider AppProvider
	app      *app.App
	rootCmd  *cobra.Command
}

// New creates a new CLI instance with the given app provider.
func New(provider AppProvider) *CLI {
	rootCmd := &cobra.Command{
		Use:           "liftoff",
		Short:         "Build, install and run iOS apps from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")

	c := &CLI{
		provider: provider,
		rootCmd:  rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newNotifyCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// App resolves the application for the invoked command, passing the parsed
// persistent flags along.
func (c *CLI) App(cmd *cobra.Command) (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, err
	}

	ctx := config.WithSettings(cmd.Context(), config.Settings{Path: path, Quiet: quiet})
	a, err := c.provider(ctx)
	if err != nil {
		return nil, err
	}
	c.app = a
	return a, nil
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
