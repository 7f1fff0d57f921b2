package cmd

import (
	"github.com/spf13/cobra"

	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/service/client"
)

var sensorCmd = &cobra.Command{
	Use:   "sensor",
	Short: "Manage sensors.",
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	sensorCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List registered sensors.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return client.ListSensors(cmd.Context(), withOut(cmd))
			},
		},
		&cobra.Command{
			Use:   "add <name> <door|window|motion>",
			Short: "Register a new inactive sensor.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				sensorType, err := domain.ParseSensorType(args[1])
				if err != nil {
					return err
				}

				return client.AddSensor(cmd.Context(), withOut(cmd), args[0], sensorType)
			},
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Unregister a sensor.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return client.RemoveSensor(cmd.Context(), withOut(cmd), args[0])
			},
		},
		&cobra.Command{
			Use:   "activate <id>",
			Short: "Report a sensor as triggered.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return client.SetSensorActive(cmd.Context(), withOut(cmd), args[0], true)
			},
		},
		&cobra.Command{
			Use:   "deactivate <id>",
			Short: "Report a sensor as idle.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return client.SetSensorActive(cmd.Context(), withOut(cmd), args[0], false)
			},
		},
	)
}
