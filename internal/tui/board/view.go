package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the board
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("boardtile"))
	b.WriteString("\n\n")

	if len(m.slots) == 0 {
		b.WriteString(statusStyle.Render("no tiles configured"))
		b.WriteString("\n")
		return b.String()
	}

	rects, colWidths, rowHeights := m.grid()
	cols := len(colWidths)
	gap := strings.Repeat(" ", columnGap)

	for row := range rowHeights {
		var cells []string
		var markers []string
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(m.slots) {
				break
			}
			cells = append(cells, m.renderSlot(i, rects[i]))
			if col < cols-1 && i < len(m.slots)-1 {
				cells = append(cells, gap)
			}
			markers = append(markers, m.renderMarker(i, colWidths[col]))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
		b.WriteString(strings.Join(markers, gap))
		b.WriteString("\n")
	}

	if revealed := m.Revealed(); !m.reveal.Done(revealed) {
		b.WriteString(statusStyle.Render(m.reveal.View(revealed)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSlot draws the tile at its animated offset, or an empty slot of
// the same size until it is revealed.
func (m Model) renderSlot(i int, r rect) string {
	s := m.slots[i]
	var body string
	if s.revealed {
		faces := s.tile.Faces().WithFaceOffset(s.motion.Position())
		body = m.renderer.RenderFaces(faces, s.tile.Config())
	}
	return lipgloss.NewStyle().Width(r.w).Height(r.h).Render(body)
}

func (m Model) renderMarker(i, width int) string {
	if i != m.cursor {
		return strings.Repeat(" ", width)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, cursorStyle.Render("▲"))
}

func (m Model) statusLine() string {
	st := m.stats
	line := fmt.Sprintf("presses: %d  releases: %d", st.Presses, st.Releases)
	if st.Last != "" {
		line += "  last: " + st.Last
	}
	return line
}
