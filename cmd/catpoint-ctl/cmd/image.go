package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/catpoint/internal/service/client"
)

// imageCmd submits a camera frame.
var imageCmd = &cobra.Command{
	Use:   "image <file>",
	Short: "Submit a PNG, JPEG or GIF camera image for cat detection.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return client.SubmitImage(cmd.Context(), withOut(cmd), args[0])
	},
}
