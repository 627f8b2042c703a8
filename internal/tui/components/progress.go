package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders how many tiles have entered the board.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress component for the given tile count.
func NewProgress(total int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 24
	return Progress{bar: bar, total: total}
}

// Done reports whether every tile is on the board.
func (p Progress) Done(revealed int) bool {
	return revealed >= p.total
}

// View renders the bar for the provided reveal count.
func (p Progress) View(revealed int) string {
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Min(1.0, float64(revealed)/float64(p.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", revealed, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
