package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	m "github.com/mouse-blink/fretwise/internal/model"
)

// verboseFlag switches file logging to debug level.
var verboseFlag bool

const rootLongDescription = `Fretwise draws text fretboard diagrams of musical scales for a configurable
tuning and fret window, and lists the scale modes and tuning schemes it
knows about.

Pitch classes use sharp names: C, C#, D, D#, E, F, F#, G, G#, A, A#, B.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fretwise",
		Short: "Guitar fretboard scale diagrams",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(
		&verboseFlag, verboseFlagName, "v",
		viper.GetBool(logVerboseKey),
		"log at debug level",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parsePitches converts pitch-class names into pitches, rejecting the whole
// list on the first unknown name.
func parsePitches(names []string) ([]m.Pitch, error) {
	pitches := make([]m.Pitch, 0, len(names))
	for _, name := range names {
		pitch, err := m.ParsePitch(name)
		if err != nil {
			return nil, err
		}

		pitches = append(pitches, pitch)
	}

	return pitches, nil
}
