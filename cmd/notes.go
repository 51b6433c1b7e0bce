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
	notesStartNoteFlag string
	notesModeFlag      string
	notesFormatFlag    string
)

// notesCmd represents the notes command.
var notesCmd = newNotesCmd()

func newNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Print the notes of a scale",
		Long:  "Print the ordered notes of a scale without the fretboard grid, as text or YAML.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := notesArgsFromConfig()
			if err != nil {
				return err
			}

			ui := controller.NewSimpleUI(cmd)

			return domain.NewWorkflow(ui).Notes(context.Background(), args)
		},
	}

	configureNotesFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(notesCmd)
}

func configureNotesFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&notesStartNoteFlag, startNoteFlagName, "n", viper.GetString(notesStartNoteKey), "scale root")
	bindFlagToConfig(cmd.Flags().Lookup(startNoteFlagName), notesStartNoteKey)

	cmd.Flags().StringVarP(&notesModeFlag, modeFlagName, "m", viper.GetString(notesModeKey), "scale mode")
	bindFlagToConfig(cmd.Flags().Lookup(modeFlagName), notesModeKey)

	cmd.Flags().StringVarP(&notesFormatFlag, formatFlagName, "f", viper.GetString(notesFormatKey), "output format (text|yaml)")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), notesFormatKey)
}

func notesArgsFromConfig() (domain.NotesArgs, error) {
	var args domain.NotesArgs

	rootName := viper.GetString(notesStartNoteKey)
	if rootName == "" {
		return args, fmt.Errorf("--%s is required", startNoteFlagName)
	}

	root, err := m.ParsePitch(rootName)
	if err != nil {
		return args, err
	}

	mode, err := m.ParseMode(viper.GetString(notesModeKey))
	if err != nil {
		return args, err
	}

	format, err := controller.ParseNotesFormat(viper.GetString(notesFormatKey))
	if err != nil {
		return args, err
	}

	return domain.NotesArgs{Root: root, Mode: mode, Format: format}, nil
}
