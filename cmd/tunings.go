package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/fretwise/internal/controller"
	"github.com/mouse-blink/fretwise/internal/domain"
	m "github.com/mouse-blink/fretwise/internal/model"
)

var (
	tuningsStringCountFlag int
	tuningsReferenceFlag   string
)

// tuningsCmd represents the tunings command.
var tuningsCmd = newTuningsCmd()

func newTuningsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tunings",
		Short: "List tuning schemes and their open strings",
		Long:  "List every tuning scheme with the open strings it derives for the given string count and reference pitch.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := tuningsArgsFromConfig()
			if err != nil {
				return err
			}

			ui := controller.NewSimpleUI(cmd)

			return domain.NewWorkflow(ui).Tunings(context.Background(), args)
		},
	}

	configureTuningsFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(tuningsCmd)
}

func configureTuningsFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&tuningsStringCountFlag, stringCountFlagName, "c", viper.GetInt(tuningsStringCountKey), "number of strings")
	bindFlagToConfig(cmd.Flags().Lookup(stringCountFlagName), tuningsStringCountKey)

	cmd.Flags().StringVarP(&tuningsReferenceFlag, referenceFlagName, "r", viper.GetString(tuningsReferenceKey), "reference pitch of the lowest string")
	bindFlagToConfig(cmd.Flags().Lookup(referenceFlagName), tuningsReferenceKey)
}

func tuningsArgsFromConfig() (domain.TuningsArgs, error) {
	var args domain.TuningsArgs

	stringCount := viper.GetInt(tuningsStringCountKey)
	if stringCount < 0 {
		return args, fmt.Errorf("--%s must be non-negative, got %d", stringCountFlagName, stringCount)
	}

	reference, err := m.ParsePitch(viper.GetString(tuningsReferenceKey))
	if err != nil {
		return args, err
	}

	return domain.TuningsArgs{StringCount: stringCount, Reference: reference}, nil
}
