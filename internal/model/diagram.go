package model

// CellKind classifies a single fret position relative to a scale. The kind
// is decided by the domain; how each kind is styled is a presentation
// concern.
type CellKind int

const (
	// CellNotInScale marks a pitch outside the scale.
	CellNotInScale CellKind = iota
	// CellRoot marks the scale root, emphasized by the presentation layer.
	CellRoot
	// CellNote marks an in-scale pitch shown by name (all-note-names mode).
	CellNote
	// CellInScale marks an in-scale, non-root pitch shown as a generic marker.
	CellInScale
)

// Cell is one fret position of one string.
type Cell struct {
	Kind  CellKind
	Pitch Pitch
}

// StringRow is one rendered string: its 1-based display index, open pitch
// and one cell per fret in the diagram window.
type StringRow struct {
	Index int
	Open  Pitch
	Cells []Cell
}

// Diagram is a fully computed fretboard diagram. Rows are ordered for
// display: highest string index first. FretsStart is the absolute fret
// number of the first cell in every row.
type Diagram struct {
	Scale      Scale
	Notes      []Pitch
	FretsStart int
	Rows       []StringRow
}
