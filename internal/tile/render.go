package tile

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/boardtile/internal/colorutil"
)

// Renderer draws faces into terminal cells.
type Renderer struct {
	// UnitsPerRow converts vertical layout units into terminal rows.
	UnitsPerRow float64
	// ColumnsPerUnit converts horizontal layout units into columns.
	ColumnsPerUnit float64
}

// DefaultRenderer maps two vertical units onto one row; terminal cells are
// roughly twice as tall as they are wide.
func DefaultRenderer() Renderer {
	return Renderer{UnitsPerRow: 2, ColumnsPerUnit: 1}
}

// Layout is the row/column placement of both faces within a tile's slot.
// Ranges are half-open.
type Layout struct {
	Columns     int
	Rows        int
	FaceStart   int
	FaceEnd     int
	ShadowStart int
	ShadowEnd   int
	LabelRow    int
}

// Layout places faces for a face of width x height layout units. Every
// boundary is converted from units independently, so the shadow's bottom
// row is identical pressed or idle.
func (r Renderer) Layout(f Faces, width, height float64) Layout {
	r = r.normalized()

	faceTop := f.Face.OffsetTop
	faceBottom := faceTop + height
	shadowTop := faceBottom + f.Shadow.OffsetTop
	shadowBottom := shadowTop + f.Shadow.Height

	l := Layout{
		Columns:     max(1, int(math.Round(width*r.ColumnsPerUnit))),
		FaceStart:   r.row(faceTop),
		FaceEnd:     r.row(faceBottom),
		ShadowStart: r.row(shadowTop),
		ShadowEnd:   r.row(shadowBottom),
	}
	if l.FaceEnd <= l.FaceStart {
		l.FaceEnd = l.FaceStart + 1
	}
	if l.ShadowEnd < l.ShadowStart {
		l.ShadowEnd = l.ShadowStart
	}
	l.Rows = max(l.FaceEnd, l.ShadowEnd)
	l.LabelRow = l.FaceStart + (l.FaceEnd-l.FaceStart)/2
	return l
}

// Render draws the tile's current faces.
func (r Renderer) Render(t *Tile) string {
	return r.RenderFaces(t.Faces(), t.cfg)
}

// RenderFaces draws faces using cfg for size, label and style overrides.
// Geometry always comes from faces: the overrides lose any margin, padding,
// height or background they carry.
func (r Renderer) RenderFaces(f Faces, cfg Config) string {
	cfg = cfg.withDefaults()
	l := r.Layout(f, cfg.Width, cfg.Height)

	faceStyle := lipgloss.NewStyle().Background(f.Face.BackgroundColor)
	shadowStyle := lipgloss.NewStyle().Background(f.Shadow.BackgroundColor)
	blank := strings.Repeat(" ", l.Columns)

	rows := make([]string, l.Rows)
	for i := range rows {
		switch {
		case i >= l.FaceStart && i < l.FaceEnd:
			if i == l.LabelRow {
				rows[i] = r.label(cfg, f.Face.BackgroundColor, l.Columns)
				continue
			}
			rounded := f.Face.BorderRadius > 0 && (i == l.FaceStart || i == l.FaceEnd-1)
			rows[i] = fill(faceStyle, l.Columns, rounded)
		case i >= l.ShadowStart && i < l.ShadowEnd:
			rounded := f.Shadow.BorderBottomLeftRadius > 0 && i == l.ShadowEnd-1
			rows[i] = fill(shadowStyle, l.Columns, rounded)
		default:
			rows[i] = blank
		}
	}

	block := strings.Join(rows, "\n")
	return containerStyle(cfg.ContainerStyle).Render(block)
}

// label renders the text centred on the face row. The text is bold in a
// colour that contrasts with the face, which stands in for a drop shadow.
func (r Renderer) label(cfg Config, background lipgloss.Color, columns int) string {
	style := cfg.LabelStyle.
		UnsetMargins().
		UnsetPadding().
		UnsetHeight().
		UnsetMaxHeight().
		UnsetWidth().
		UnsetMaxWidth()
	if _, unset := style.GetForeground().(lipgloss.NoColor); unset {
		style = style.Foreground(colorutil.Contrast(background)).Bold(true)
	}

	return style.
		Background(background).
		Width(columns).
		MaxWidth(columns).
		MaxHeight(1).
		Align(lipgloss.Center).
		Render(cfg.Label)
}

func containerStyle(s lipgloss.Style) lipgloss.Style {
	return s.
		UnsetHeight().
		UnsetMaxHeight().
		UnsetMarginTop().
		UnsetPaddingTop().
		UnsetBackground()
}

func fill(style lipgloss.Style, columns int, rounded bool) string {
	if !rounded || columns < 3 {
		return style.Render(strings.Repeat(" ", columns))
	}
	return " " + style.Render(strings.Repeat(" ", columns-2)) + " "
}

func (r Renderer) row(units float64) int {
	return max(0, int(math.Round(units/r.UnitsPerRow)))
}

func (r Renderer) normalized() Renderer {
	if r.UnitsPerRow <= 0 {
		r.UnitsPerRow = 1
	}
	if r.ColumnsPerUnit <= 0 {
		r.ColumnsPerUnit = 1
	}
	return r
}
