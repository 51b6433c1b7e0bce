package domain

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/fretwise/internal/controller"
	m "github.com/mouse-blink/fretwise/internal/model"
)

// RenderArgs holds one render invocation. Each root in Roots becomes its own
// diagram over the same tuning and fret window.
type RenderArgs struct {
	Roots        []m.Pitch
	Mode         m.ScaleMode
	Scheme       m.TuningScheme
	Reference    m.Pitch
	StringCount  int
	FretsStart   int
	FretsEnd     int
	AllNoteNames bool
}

// NotesArgs holds one notes invocation.
type NotesArgs struct {
	Root   m.Pitch
	Mode   m.ScaleMode
	Format controller.NotesFormat
}

// TuningsArgs holds one tunings listing invocation.
type TuningsArgs struct {
	StringCount int
	Reference   m.Pitch
}

// Workflow ties the music-theory model to the UI.
type Workflow interface {
	Render(ctx context.Context, args RenderArgs) error
	Notes(ctx context.Context, args NotesArgs) error
	Scales(ctx context.Context) error
	Tunings(ctx context.Context, args TuningsArgs) error
}

type workflow struct {
	ui controller.UI
}

// NewWorkflow creates a Workflow displaying through the given UI.
func NewWorkflow(ui controller.UI) Workflow {
	return &workflow{ui: ui}
}

// Render builds one diagram per requested root and displays them in request
// order. Diagram construction is pure, so the builds run concurrently; only
// the display is sequential.
func (w *workflow) Render(ctx context.Context, args RenderArgs) error {
	guitar := m.NewGuitar(args.Scheme, args.StringCount, args.Reference, args.FretsEnd)

	slog.Debug("render: tuning derived",
		"scheme", args.Scheme,
		"strings", len(guitar.Strings),
		"reference", args.Reference,
	)

	diagrams := make([]m.Diagram, len(args.Roots))

	group, _ := errgroup.WithContext(ctx)
	for i, root := range args.Roots {
		group.Go(func() error {
			diagrams[i] = BuildDiagram(BoardConfig{
				Guitar:       guitar,
				Scale:        m.Scale{Root: root, Mode: args.Mode},
				FretsStart:   args.FretsStart,
				AllNoteNames: args.AllNoteNames,
			})

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for i, diagram := range diagrams {
		if i > 0 {
			w.ui.DisplaySeparator(ctx)
		}

		slog.Debug("render: displaying diagram", "scale", diagram.Scale.String())

		if err := w.ui.DisplayDiagram(ctx, diagram); err != nil {
			return err
		}
	}

	return nil
}

// Notes displays the header block of a scale without the grid.
func (w *workflow) Notes(ctx context.Context, args NotesArgs) error {
	scale := m.Scale{Root: args.Root, Mode: args.Mode}

	return w.ui.DisplayNotes(ctx, scale, args.Format)
}

// Scales displays the available scale modes and their interval patterns.
func (w *workflow) Scales(ctx context.Context) error {
	modes := m.Modes()
	listings := make([]controller.ModeListing, 0, len(modes))

	for _, mode := range modes {
		listings = append(listings, controller.ModeListing{
			Mode:      mode,
			Intervals: mode.Intervals(),
		})
	}

	return w.ui.DisplayModes(ctx, listings)
}

// Tunings displays each tuning scheme with its derived open strings.
func (w *workflow) Tunings(ctx context.Context, args TuningsArgs) error {
	schemes := m.Tunings()
	listings := make([]controller.TuningListing, 0, len(schemes))

	for _, scheme := range schemes {
		listings = append(listings, controller.TuningListing{
			Scheme:  scheme,
			Strings: scheme.DeriveStrings(args.StringCount, args.Reference),
		})
	}

	return w.ui.DisplayTunings(ctx, listings)
}
