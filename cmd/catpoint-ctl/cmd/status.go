package cmd

import (
	"github.com/spf13/cobra"

	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/service/client"
)

var (
	// statusCmd prints the controller state.
	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show alarm, arming and sensor status.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return client.Status(cmd.Context(), withOut(cmd))
		},
	}

	// armCmd arms the system.
	armCmd = &cobra.Command{
		Use:       "arm <home|away>",
		Short:     "Arm the system at home or away.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"home", "away"},
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseArmingStatus(args[0])
			if err != nil {
				return err
			}

			return client.SetArming(cmd.Context(), withOut(cmd), status)
		},
	}

	// disarmCmd disarms the system and clears the alarm.
	disarmCmd = &cobra.Command{
		Use:   "disarm",
		Short: "Disarm the system and clear the alarm.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return client.SetArming(cmd.Context(), withOut(cmd), domain.ArmingStatusDisarmed)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	for _, c := range []*cobra.Command{armCmd, disarmCmd} {
		c.Flags().BoolVarP(&options.Retry, "retry", "r", false, "keep retrying until the server confirms")
	}
}

// withOut returns the shared options writing to the command output.
func withOut(cmd *cobra.Command) *client.Options {
	opts := *options
	opts.Out = cmd.OutOrStdout()

	return &opts
}
