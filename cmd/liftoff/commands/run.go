package commands

import (
	"github.com/spf13/cobra"
	"go.liftoff.dev/liftoff/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var (
		scheme         string
		configuration  string
		destination    string
		device         string
		binary         string
		port           int
		noBuildCache   bool
		rebundle       bool
		nonInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build the app and run it on a simulator or export it for a device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dest, err := domain.ParseDestination(destination)
			if err != nil {
				return err
			}

			a, err := c.App(cmd)
			if err != nil {
				return err
			}

			return a.Run(cmd.Context(), domain.RunOptions{
				Scheme:         scheme,
				Configuration:  configuration,
				Destination:    dest,
				Device:         device,
				Binary:         binary,
				Port:           port,
				NoBuildCache:   noBuildCache,
				Rebundle:       rebundle,
				NonInteractive: nonInteractive,
			})
		},
	}

	cmd.Flags().StringVar(&scheme, "scheme", "", "Xcode scheme (defaults to the configured scheme)")
	cmd.Flags().StringVar(&configuration, "configuration", "", "Build configuration (defaults to the configured one)")
	cmd.Flags().StringVar(&destination, "destination", "", "Target destination: simulator or device")
	cmd.Flags().StringVarP(&device, "device", "d", "", "Device UDID or name")
	cmd.Flags().StringVar(&binary, "binary", "", "Path to a prebuilt .app, skipping build and cache")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Bundler dev-server port")
	cmd.Flags().BoolVar(&noBuildCache, "no-build-cache", false, "Disable build cache restore and upload")
	cmd.Flags().BoolVar(&rebundle, "rebundle", false, "Repackage the JS bundle into an existing binary instead of building")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Stop the bundler after launch instead of staying attached")

	return cmd
}
