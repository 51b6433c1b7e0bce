package controller

import "github.com/charmbracelet/lipgloss"

// The diagram core only decides what each cell is; every bit of styling
// lives here.
var (
	// rootStyle emphasizes the scale root, matching the bright-yellow
	// highlight of classic terminal chord charts.
	rootStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	// titleStyle renders the interactive board header.
	titleStyle = lipgloss.NewStyle().Bold(true)

	// mutedStyle renders out-of-scale markers in the interactive board.
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
