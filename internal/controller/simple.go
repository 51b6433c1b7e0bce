package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/fretwise/internal/model"
)

// Cell markers of the plain-text grid.
const (
	notInScaleMarker = "|"
	inScaleMarker    = "O"
)

// SimpleUI implements UI with plain text on the cobra command's stdout.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDiagram prints the header block followed by the tab-separated grid,
// one row per string, highest string first.
func (s *SimpleUI) DisplayDiagram(ctx context.Context, diagram m.Diagram) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("SCALE: %s\n", diagram.Scale)
	s.printf("NOTES: %s\n", joinPitches(diagram.Notes))
	s.printf("\n")

	for _, row := range diagram.Rows {
		s.printf("%d(%s)\t", row.Index, row.Open)
		for _, cell := range row.Cells {
			s.printf("\t%s", cellText(cell))
		}
		s.printf("\n")
	}

	return nil
}

// DisplaySeparator prints a blank line between consecutive diagrams.
func (s *SimpleUI) DisplaySeparator(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n")
}

// notesDocument is the machine-readable shape of a notes listing.
type notesDocument struct {
	Scale string   `yaml:"scale"`
	Root  string   `yaml:"root"`
	Mode  string   `yaml:"mode"`
	Notes []string `yaml:"notes"`
}

// DisplayNotes prints the scale header block without the grid, as plain text
// or YAML.
func (s *SimpleUI) DisplayNotes(ctx context.Context, scale m.Scale, format NotesFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == NotesFormatYAML {
		notes := scale.NotesList()
		doc := notesDocument{
			Scale: scale.String(),
			Root:  scale.Root.String(),
			Mode:  scale.Mode.String(),
			Notes: make([]string, 0, len(notes)),
		}
		for _, note := range notes {
			doc.Notes = append(doc.Notes, note.String())
		}

		encoded, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode notes: %w", err)
		}

		s.printf("%s", encoded)

		return nil
	}

	s.printf("SCALE: %s\n", scale)
	s.printf("NOTES: %s\n", joinPitches(scale.NotesList()))

	return nil
}

// DisplayModes prints the available scale modes as a table.
func (s *SimpleUI) DisplayModes(ctx context.Context, listings []ModeListing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Mode", "Intervals"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, listing := range listings {
		table.Append([]string{listing.Mode.String(), joinInts(listing.Intervals)})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayTunings prints each tuning scheme with its derived open strings.
func (s *SimpleUI) DisplayTunings(ctx context.Context, listings []TuningListing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Scheme", "Open Strings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, listing := range listings {
		table.Append([]string{listing.Scheme.String(), joinPitches(listing.Strings)})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// cellText maps a cell to its printed form; only the root is styled.
func cellText(cell m.Cell) string {
	switch cell.Kind {
	case m.CellRoot:
		return rootStyle.Render(cell.Pitch.String())
	case m.CellNote:
		return cell.Pitch.String()
	case m.CellInScale:
		return inScaleMarker
	case m.CellNotInScale:
		return notInScaleMarker
	}

	return notInScaleMarker
}

func joinPitches(pitches []m.Pitch) string {
	names := make([]string, 0, len(pitches))
	for _, pitch := range pitches {
		names = append(names, pitch.String())
	}

	return strings.Join(names, ", ")
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, fmt.Sprintf("%d", value))
	}

	return strings.Join(parts, ", ")
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
