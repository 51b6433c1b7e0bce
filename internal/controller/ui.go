// Package controller provides output controllers for displaying fretboard
// diagrams and listings.
package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/fretwise/internal/model"
)

// NotesFormat selects the encoding of the notes listing.
type NotesFormat string

// Available notes formats.
const (
	NotesFormatText NotesFormat = "text"
	NotesFormatYAML NotesFormat = "yaml"
)

// ParseNotesFormat converts a format name into a NotesFormat.
func ParseNotesFormat(name string) (NotesFormat, error) {
	switch NotesFormat(strings.ToLower(strings.TrimSpace(name))) {
	case NotesFormatText:
		return NotesFormatText, nil
	case NotesFormatYAML:
		return NotesFormatYAML, nil
	}

	return "", fmt.Errorf("unknown notes format %q", name)
}

// ModeListing is one row of the scales listing.
type ModeListing struct {
	Mode      m.ScaleMode
	Intervals []int
}

// TuningListing is one row of the tunings listing.
type TuningListing struct {
	Scheme  m.TuningScheme
	Strings []m.Pitch
}

// UI defines the interface for displaying diagrams and listings.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayDiagram(ctx context.Context, diagram m.Diagram) error
	DisplaySeparator(ctx context.Context)
	DisplayNotes(ctx context.Context, scale m.Scale, format NotesFormat) error
	DisplayModes(ctx context.Context, listings []ModeListing) error
	DisplayTunings(ctx context.Context, listings []TuningListing) error
}

// NewUI creates the UI for a command: the interactive board when requested,
// plain text otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
