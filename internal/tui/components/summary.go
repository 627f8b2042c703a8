package components

import (
	"fmt"
	"strings"
)

// TilePresses is one tile's press count.
type TilePresses struct {
	Label   string
	Presses int
}

// SummaryData aggregates a board session for rendering.
type SummaryData struct {
	Presses  int
	Releases int
	Tiles    []TilePresses
}

// Summary renders a textual session summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary. Tiles that were never pressed are left out.
func (s Summary) View() string {
	if s.data.Presses == 0 {
		return "No tiles pressed"
	}

	lines := []string{fmt.Sprintf("Presses: %d, releases: %d", s.data.Presses, s.data.Releases)}

	busiest := -1
	for i, tp := range s.data.Tiles {
		if tp.Presses == 0 {
			continue
		}
		if busiest < 0 || tp.Presses > s.data.Tiles[busiest].Presses {
			busiest = i
		}
		lines = append(lines, fmt.Sprintf("  %-16s %d", displayLabel(tp.Label, i), tp.Presses))
	}
	if busiest >= 0 {
		lines = append(lines, fmt.Sprintf("Busiest: %s", displayLabel(s.data.Tiles[busiest].Label, busiest)))
	}

	return strings.Join(lines, "\n")
}

func displayLabel(label string, i int) string {
	if label == "" {
		return fmt.Sprintf("#%d", i+1)
	}
	return label
}
