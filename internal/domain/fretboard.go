// Package domain builds fretboard diagrams and drives the rendering
// workflow.
package domain

import (
	m "github.com/mouse-blink/fretwise/internal/model"
)

// BoardConfig holds the immutable parameters of one diagram build. The fret
// window is [FretsStart, Guitar.Frets); a window with FretsStart >=
// Guitar.Frets is degenerate but valid and produces zero cells per string.
type BoardConfig struct {
	Guitar       m.Guitar
	Scale        m.Scale
	FretsStart   int
	AllNoteNames bool
}

// BuildDiagram computes the complete diagram for a board configuration.
// It is a pure function: identical configurations produce identical
// diagrams.
func BuildDiagram(cfg BoardConfig) m.Diagram {
	set := cfg.Scale.NoteSet()

	rows := make([]m.StringRow, 0, len(cfg.Guitar.Strings))
	for i := len(cfg.Guitar.Strings) - 1; i >= 0; i-- {
		open := cfg.Guitar.Strings[i]

		width := cfg.Guitar.Frets - cfg.FretsStart
		if width < 0 {
			width = 0
		}

		cells := make([]m.Cell, 0, width)
		for fret := cfg.FretsStart; fret < cfg.Guitar.Frets; fret++ {
			pitch := open.OffsetBy(fret)
			cells = append(cells, m.Cell{
				Kind:  classifyCell(pitch, cfg.Scale.Root, set, cfg.AllNoteNames),
				Pitch: pitch,
			})
		}

		rows = append(rows, m.StringRow{Index: i + 1, Open: open, Cells: cells})
	}

	return m.Diagram{
		Scale:      cfg.Scale,
		Notes:      cfg.Scale.NotesList(),
		FretsStart: cfg.FretsStart,
		Rows:       rows,
	}
}

// classifyCell applies the cell precedence: out of scale, then root, then
// named note (all-note-names mode), then generic in-scale marker.
func classifyCell(pitch, root m.Pitch, set m.PitchSet, allNoteNames bool) m.CellKind {
	switch {
	case !set.Contains(pitch):
		return m.CellNotInScale
	case pitch == root:
		return m.CellRoot
	case allNoteNames:
		return m.CellNote
	default:
		return m.CellInScale
	}
}
