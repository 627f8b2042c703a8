package board

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2)

	helpStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

const (
	// headerRows is the title line plus the blank line under it
	headerRows = 2
	// columnGap separates tiles horizontally
	columnGap = 2
	// cursorRows is the marker line under every grid row
	cursorRows = 1
)
