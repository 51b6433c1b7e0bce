package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretwise/internal/controller"
	"github.com/mouse-blink/fretwise/internal/domain"
)

// scalesCmd represents the scales command.
var scalesCmd = newScalesCmd()

func newScalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "List available scale modes",
		Long:  "List every scale mode with its semitone interval pattern.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := controller.NewSimpleUI(cmd)

			return domain.NewWorkflow(ui).Scales(context.Background())
		},
	}
}

func init() {
	rootCmd.AddCommand(scalesCmd)
}
