package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/catpoint/internal/config"
	"github.com/oshokin/catpoint/internal/service/client"
	"github.com/oshokin/catpoint/internal/version"
)

var (
	// options are shared by every subcommand.
	options = new(client.Options)

	// rootCmd represents the base command for controlling a catpoint server.
	rootCmd = &cobra.Command{
		Use:   "catpoint-ctl",
		Short: "Control a catpoint security controller.",
		Long: `Command line client for the catpoint security controller.

Reads the server address and timeouts from the configuration file unless
--server is given. Every request is tagged with the current user and hostname.`,
		SilenceUsage: true,
	}
)

// Execute runs the catpoint-ctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&options.ConfigPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVar(&options.ServerAddress, "server", "", "server address (overrides config)")
	flags.BoolVar(&options.NoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(statusCmd, armCmd, disarmCmd, sensorCmd, imageCmd, watchCmd)
}
