package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/fretwise/internal/controller"
	"github.com/mouse-blink/fretwise/internal/domain"
	m "github.com/mouse-blink/fretwise/internal/model"
)

var (
	renderStartNotesFlag   []string
	renderModeFlag         string
	renderStringCountFlag  int
	renderAllNoteNamesFlag bool
	renderFretsStartFlag   int
	renderFretsEndFlag     int
	renderTuningFlag       string
	renderReferenceFlag    string
	renderInteractiveFlag  bool
)

const renderLongDescription = `Render a fretboard diagram of a scale.

Each cell of the grid is the note sounding at that fret: "|" marks notes
outside the scale, "O" marks scale notes, and the scale root is shown by
name and highlighted. With --all-note-names every scale note is shown by
name. Repeating --start-note renders one diagram per root.`

// renderCmd represents the render command.
var renderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a fretboard scale diagram",
		Long:  renderLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := renderArgsFromConfig()
			if err != nil {
				return err
			}

			interactive := viper.GetBool(renderInteractiveKey) && controller.IsTTY(os.Stdout)
			ui := controller.NewUI(cmd, interactive)

			return domain.NewWorkflow(ui).Render(context.Background(), args)
		},
	}

	configureRenderFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func configureRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&renderStartNotesFlag, startNoteFlagName, "n", viper.GetStringSlice(renderStartNotesKey), "scale root (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(startNoteFlagName), renderStartNotesKey)

	cmd.Flags().StringVarP(&renderModeFlag, modeFlagName, "m", viper.GetString(renderModeKey), "scale mode")
	bindFlagToConfig(cmd.Flags().Lookup(modeFlagName), renderModeKey)

	cmd.Flags().IntVarP(&renderStringCountFlag, stringCountFlagName, "c", viper.GetInt(renderStringCountKey), "number of strings")
	bindFlagToConfig(cmd.Flags().Lookup(stringCountFlagName), renderStringCountKey)

	cmd.Flags().BoolVarP(&renderAllNoteNamesFlag, allNoteNamesFlagName, "a", viper.GetBool(renderAllNoteNamesKey), "show every scale note by name")
	bindFlagToConfig(cmd.Flags().Lookup(allNoteNamesFlagName), renderAllNoteNamesKey)

	cmd.Flags().IntVar(&renderFretsStartFlag, fretsStartFlagName, viper.GetInt(renderFretsStartKey), "first fret of the window")
	bindFlagToConfig(cmd.Flags().Lookup(fretsStartFlagName), renderFretsStartKey)

	cmd.Flags().IntVar(&renderFretsEndFlag, fretsEndFlagName, viper.GetInt(renderFretsEndKey), "fret after the last one shown")
	bindFlagToConfig(cmd.Flags().Lookup(fretsEndFlagName), renderFretsEndKey)

	cmd.Flags().StringVarP(&renderTuningFlag, tuningFlagName, "t", viper.GetString(renderTuningKey), "tuning scheme (fourths|scale_centered)")
	bindFlagToConfig(cmd.Flags().Lookup(tuningFlagName), renderTuningKey)

	cmd.Flags().StringVarP(&renderReferenceFlag, referenceFlagName, "r", viper.GetString(renderReferenceKey), "reference pitch of the lowest string")
	bindFlagToConfig(cmd.Flags().Lookup(referenceFlagName), renderReferenceKey)

	cmd.Flags().BoolVarP(&renderInteractiveFlag, interactiveFlagName, "i", viper.GetBool(renderInteractiveKey), "scrollable fretboard (requires a terminal)")
	bindFlagToConfig(cmd.Flags().Lookup(interactiveFlagName), renderInteractiveKey)
}

// renderArgsFromConfig validates the boundary input and assembles the
// workflow arguments. The core is total over its domain; every rejection
// happens here.
func renderArgsFromConfig() (domain.RenderArgs, error) {
	var args domain.RenderArgs

	rootNames := viper.GetStringSlice(renderStartNotesKey)
	if len(rootNames) == 0 {
		return args, fmt.Errorf("at least one --%s is required", startNoteFlagName)
	}

	roots, err := parsePitches(rootNames)
	if err != nil {
		return args, err
	}

	mode, err := m.ParseMode(viper.GetString(renderModeKey))
	if err != nil {
		return args, err
	}

	scheme, err := m.ParseTuning(viper.GetString(renderTuningKey))
	if err != nil {
		return args, err
	}

	reference, err := m.ParsePitch(viper.GetString(renderReferenceKey))
	if err != nil {
		return args, err
	}

	stringCount := viper.GetInt(renderStringCountKey)
	if stringCount < 0 {
		return args, fmt.Errorf("--%s must be non-negative, got %d", stringCountFlagName, stringCount)
	}

	fretsStart := viper.GetInt(renderFretsStartKey)
	fretsEnd := viper.GetInt(renderFretsEndKey)
	if fretsStart < 0 || fretsEnd < 0 {
		return args, fmt.Errorf("fret window must be non-negative, got [%d, %d)", fretsStart, fretsEnd)
	}

	return domain.RenderArgs{
		Roots:        roots,
		Mode:         mode,
		Scheme:       scheme,
		Reference:    reference,
		StringCount:  stringCount,
		FretsStart:   fretsStart,
		FretsEnd:     fretsEnd,
		AllNoteNames: viper.GetBool(renderAllNoteNamesKey),
	}, nil
}
