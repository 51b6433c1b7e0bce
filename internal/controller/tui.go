package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/fretwise/internal/model"
)

// TUI implements UI using Bubble Tea for an interactive fretboard with a
// scrollable fret window. Listings and notes fall through to plain text.
type TUI struct {
	*SimpleUI

	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   cmd.OutOrStdout(),
	}
}

// DisplayDiagram runs the interactive board. The diagram is computed once;
// scrolling only changes which fret columns are visible.
func (p *TUI) DisplayDiagram(ctx context.Context, diagram m.Diagram) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newBoardModel(diagram)

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// boardKeyMap defines the key bindings of the interactive board.
type boardKeyMap struct {
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding
	Quit  key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Home, k.End},
		{k.Quit},
	}
}

func defaultBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "frets down"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "frets up"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first fret"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last fret"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Column layout of the board view.
const (
	boardCellWidth  = 4
	boardRowPrefix  = 8
	defaultBoardCol = 12
)

// boardModel is the Bubble Tea model for the interactive fretboard.
type boardModel struct {
	diagram  m.Diagram
	keys     boardKeyMap
	help     help.Model
	offset   int // first visible fret column
	width    int
	height   int
	quitting bool
}

func newBoardModel(diagram m.Diagram) boardModel {
	return boardModel{
		diagram: diagram,
		keys:    defaultBoardKeyMap(),
		help:    help.New(),
	}
}

func (bm boardModel) Init() tea.Cmd {
	return nil
}

func (bm boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height
		bm.help.Width = msg.Width

		if bm.offset > bm.maxOffset() {
			bm.offset = bm.maxOffset()
		}

		return bm, nil

	case tea.KeyMsg:
		return bm.handleKeyPress(msg)
	}

	return bm, nil
}

func (bm boardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, bm.keys.Quit):
		bm.quitting = true
		return bm, tea.Quit

	case key.Matches(msg, bm.keys.Right):
		bm.offset++
		if bm.offset > bm.maxOffset() {
			bm.offset = bm.maxOffset()
		}

		return bm, nil

	case key.Matches(msg, bm.keys.Left):
		bm.offset--
		if bm.offset < 0 {
			bm.offset = 0
		}

		return bm, nil

	case key.Matches(msg, bm.keys.Home):
		bm.offset = 0

		return bm, nil

	case key.Matches(msg, bm.keys.End):
		bm.offset = bm.maxOffset()

		return bm, nil
	}

	return bm, nil
}

// totalCols returns the number of fret columns in the diagram.
func (bm boardModel) totalCols() int {
	if len(bm.diagram.Rows) == 0 {
		return 0
	}

	return len(bm.diagram.Rows[0].Cells)
}

// visibleCols returns how many fret columns fit on screen.
func (bm boardModel) visibleCols() int {
	if bm.width == 0 {
		return defaultBoardCol
	}

	cols := (bm.width - boardRowPrefix) / boardCellWidth
	if cols < 1 {
		return 1
	}

	return cols
}

// maxOffset returns the maximum scroll offset.
func (bm boardModel) maxOffset() int {
	maxOff := bm.totalCols() - bm.visibleCols()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

func (bm boardModel) View() string {
	if bm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("SCALE: %s", bm.diagram.Scale)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "NOTES: %s\n\n", joinPitches(bm.diagram.Notes))

	start := bm.offset
	end := start + bm.visibleCols()
	if end > bm.totalCols() {
		end = bm.totalCols()
	}

	bm.renderFretRuler(&b, start, end)

	for _, row := range bm.diagram.Rows {
		fmt.Fprintf(&b, "%-*s", boardRowPrefix, fmt.Sprintf("%d(%s)", row.Index, row.Open))
		for _, cell := range row.Cells[start:end] {
			b.WriteString(boardCellText(cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(bm.help.View(bm.keys))
	b.WriteString("\n")

	return b.String()
}

// renderFretRuler prints the absolute fret numbers above the grid.
func (bm boardModel) renderFretRuler(b *strings.Builder, start, end int) {
	fmt.Fprintf(b, "%-*s", boardRowPrefix, "")
	for col := start; col < end; col++ {
		fmt.Fprintf(b, "%-*d", boardCellWidth, bm.diagram.FretsStart+col)
	}
	b.WriteString("\n")
}

// boardCellText pads each cell to a fixed column width before styling so
// styled and unstyled cells line up.
func boardCellText(cell m.Cell) string {
	switch cell.Kind {
	case m.CellRoot:
		return rootStyle.Render(fmt.Sprintf("%-*s", boardCellWidth, cell.Pitch))
	case m.CellNote:
		return fmt.Sprintf("%-*s", boardCellWidth, cell.Pitch)
	case m.CellInScale:
		return fmt.Sprintf("%-*s", boardCellWidth, inScaleMarker)
	case m.CellNotInScale:
		return mutedStyle.Render(fmt.Sprintf("%-*s", boardCellWidth, notInScaleMarker))
	}

	return fmt.Sprintf("%-*s", boardCellWidth, notInScaleMarker)
}
