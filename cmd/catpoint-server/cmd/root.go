package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/catpoint/internal/config"
	"github.com/oshokin/catpoint/internal/service/server"
	"github.com/oshokin/catpoint/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// storagePath overrides the state file or database location.
	storagePath string
	// quiet disables the colored status echo.
	quiet bool

	// rootCmd represents the base command for running the catpoint server.
	rootCmd = &cobra.Command{
		Use:   "catpoint-server [listen-address]",
		Short: "Run the catpoint security controller.",
		Long: `Starts the catpoint security controller.

The controller keeps sensors, the arming mode and the alarm status, reacts to
sensor and camera events and serves control clients over gRPC.
Only the port from ServerAddress config is used for listening (e.g., :7300).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:7300).
The HTTP panel and the MQTT bridge start when configured.
State is stored in memory, a YAML file or SQLite depending on the storage driver.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				StoragePath:   storagePath,
			}

			if !quiet {
				options.Console = os.Stdout
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the catpoint-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&storagePath, "storage", "s", "", "state file or database path (overrides config)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not echo status changes to stdout")
}
