// Package cmd provides the root command and CLI setup for fretwise.
package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "fretwise"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	startNoteFlagName    = "start-note"
	modeFlagName         = "mode"
	stringCountFlagName  = "string-count"
	allNoteNamesFlagName = "all-note-names"
	fretsStartFlagName   = "frets-start"
	fretsEndFlagName     = "frets-end"
	tuningFlagName       = "tuning"
	referenceFlagName    = "reference"
	interactiveFlagName  = "interactive"
	formatFlagName       = "format"
	verboseFlagName      = "verbose"

	renderStartNotesKey   = "render.start_notes"
	renderModeKey         = "render.mode"
	renderStringCountKey  = "render.string_count"
	renderAllNoteNamesKey = "render.all_note_names"
	renderFretsStartKey   = "render.frets_start"
	renderFretsEndKey     = "render.frets_end"
	renderTuningKey       = "render.tuning"
	renderReferenceKey    = "render.reference"
	renderInteractiveKey  = "render.interactive"

	notesStartNoteKey = "notes.start_note"
	notesModeKey      = "notes.mode"
	notesFormatKey    = "notes.format"

	tuningsStringCountKey = "tunings.string_count"
	tuningsReferenceKey   = "tunings.reference"

	defaultMode         = "Major"
	defaultStringCount  = 6
	defaultFretsStart   = 0
	defaultFretsEnd     = 24
	defaultTuning       = "fourths"
	defaultReference    = "E"
	defaultNotesFormat  = "text"
	defaultAllNoteNames = false
	defaultInteractive  = false

	envPrefix = "FRETWISE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".fretwise.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(renderStartNotesKey, []string{})
	viper.SetDefault(renderModeKey, defaultMode)
	viper.SetDefault(renderStringCountKey, defaultStringCount)
	viper.SetDefault(renderAllNoteNamesKey, defaultAllNoteNames)
	viper.SetDefault(renderFretsStartKey, defaultFretsStart)
	viper.SetDefault(renderFretsEndKey, defaultFretsEnd)
	viper.SetDefault(renderTuningKey, defaultTuning)
	viper.SetDefault(renderReferenceKey, defaultReference)
	viper.SetDefault(renderInteractiveKey, defaultInteractive)

	viper.SetDefault(notesStartNoteKey, "")
	viper.SetDefault(notesModeKey, defaultMode)
	viper.SetDefault(notesFormatKey, defaultNotesFormat)

	viper.SetDefault(tuningsStringCountKey, defaultStringCount)
	viper.SetDefault(tuningsReferenceKey, defaultReference)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
