package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/catpoint/internal/service/watcher"
)

var (
	// exitOnAlarm stops watching when the alarm sounds.
	exitOnAlarm bool

	// watchCmd follows the event stream.
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Print status changes as they happen.",
		Long: `Follows the server event stream and prints alarm, camera and sensor changes.

The stream is reopened every 5 seconds while the server is unreachable.
With --exit-on-alarm the command returns as soon as the alarm sounds, which
makes it usable as a trigger in shell scripts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return watcher.Run(cmd.Context(), &watcher.Options{
				ConfigPath:    options.ConfigPath,
				ServerAddress: options.ServerAddress,
				ExitOnAlarm:   exitOnAlarm,
				Out:           cmd.OutOrStdout(),
				NoColor:       options.NoColor,
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	watchCmd.Flags().BoolVar(&exitOnAlarm, "exit-on-alarm", false, "exit once the alarm status becomes ALARM")
}
