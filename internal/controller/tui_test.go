package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/fretwise/internal/model"
)

// wideDiagram builds a single-string diagram with 24 fret columns so the
// window has room to scroll.
func wideDiagram() m.Diagram {
	scale := m.Scale{Root: m.C, Mode: m.Major}
	set := scale.NoteSet()

	cells := make([]m.Cell, 24)
	for fret := range cells {
		pitch := m.E.OffsetBy(fret)
		kind := m.CellNotInScale
		if set.Contains(pitch) {
			kind = m.CellInScale
		}
		if pitch == scale.Root {
			kind = m.CellRoot
		}
		cells[fret] = m.Cell{Kind: kind, Pitch: pitch}
	}

	return m.Diagram{
		Scale: scale,
		Notes: scale.NotesList(),
		Rows:  []m.StringRow{{Index: 1, Open: m.E, Cells: cells}},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized(bm boardModel, width, height int) boardModel {
	updated, _ := bm.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(boardModel)
}

func TestBoardModel_Scrolling(t *testing.T) {
	bm := sized(newBoardModel(wideDiagram()), 48, 24)

	visible := bm.visibleCols()
	require.Less(t, visible, bm.totalCols(), "window must be smaller than the board")

	// Scroll right past the end clamps at maxOffset.
	for i := 0; i < 100; i++ {
		updated, _ := bm.handleKeyPress(keyMsg("l"))
		bm = updated.(boardModel)
	}
	assert.Equal(t, bm.maxOffset(), bm.offset)

	// Scroll back left clamps at zero.
	for i := 0; i < 100; i++ {
		updated, _ := bm.handleKeyPress(keyMsg("h"))
		bm = updated.(boardModel)
	}
	assert.Equal(t, 0, bm.offset)

	// Jump to the end and back to the start.
	updated, _ := bm.handleKeyPress(keyMsg("G"))
	bm = updated.(boardModel)
	assert.Equal(t, bm.maxOffset(), bm.offset)

	updated, _ = bm.handleKeyPress(keyMsg("g"))
	bm = updated.(boardModel)
	assert.Equal(t, 0, bm.offset)
}

func TestBoardModel_Quit(t *testing.T) {
	bm := newBoardModel(wideDiagram())

	updated, cmd := bm.handleKeyPress(keyMsg("q"))
	bm = updated.(boardModel)

	assert.True(t, bm.quitting)
	require.NotNil(t, cmd)
	assert.Empty(t, bm.View())
}

func TestBoardModel_View(t *testing.T) {
	bm := sized(newBoardModel(wideDiagram()), 80, 24)

	view := bm.View()
	assert.Contains(t, view, "SCALE: C Major")
	assert.Contains(t, view, "NOTES: C, D, E, F, G, A, B, C")
	assert.Contains(t, view, "1(E)")
}

func TestBoardModel_ResizeClampsOffset(t *testing.T) {
	bm := sized(newBoardModel(wideDiagram()), 48, 24)

	updated, _ := bm.handleKeyPress(keyMsg("G"))
	bm = updated.(boardModel)
	require.Positive(t, bm.offset)

	// Growing the window shrinks maxOffset; the offset follows.
	bm = sized(bm, 200, 24)
	assert.LessOrEqual(t, bm.offset, bm.maxOffset())
}

func TestBoardModel_EmptyDiagram(t *testing.T) {
	bm := newBoardModel(m.Diagram{Scale: m.Scale{Root: m.C, Mode: m.Major}})

	assert.Equal(t, 0, bm.totalCols())
	assert.Equal(t, 0, bm.maxOffset())
	assert.Contains(t, bm.View(), "SCALE: C Major")
}
