package tile

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/boardtile/internal/validation"
)

// Defaults shared by every tile on a board, in layout units.
const (
	DefaultDepth        = 6.0
	DefaultBorderRadius = 2.0
	DefaultWidth        = 10.0
	DefaultHeight       = 4.0
)

// Config is what the owning container supplies for one tile. Start from
// DefaultConfig: the zero Config is a flat, square, disabled tile.
type Config struct {
	// Depth is how far the face is raised above its shadow.
	Depth float64 `validate:"-"`
	// BorderRadius rounds both faces. Zero means square corners.
	BorderRadius float64 `validate:"-"`
	// Width and Height size the face.
	Width  float64 `validate:"-"`
	Height float64 `validate:"-"`

	BackgroundColor lipgloss.Color `validate:"required,tilecolor"`
	// Enabled gates press handling. A disabled tile ignores press-begin.
	Enabled bool   `validate:"-"`
	Label   string `validate:"max=16"`

	LabelStyle     lipgloss.Style `validate:"-"`
	ContainerStyle lipgloss.Style `validate:"-"`

	OnPressIn  func() `validate:"-"`
	OnPressOut func() `validate:"-"`

	// Delay holds back the tile's entry animation.
	Delay time.Duration `validate:"gte=0"`

	// AdditionalProps are passed through to the rendered props. Computed
	// geometry keys always win over entries here.
	AdditionalProps map[string]any `validate:"-"`
}

// NumberLabel formats a numeric tile label.
func NumberLabel(n int) string {
	return strconv.Itoa(n)
}

// DefaultConfig returns an enabled tile of the given colour with the
// board-wide default geometry.
func DefaultConfig(background lipgloss.Color) Config {
	return Config{
		Depth:           DefaultDepth,
		BorderRadius:    DefaultBorderRadius,
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		BackgroundColor: background,
		Enabled:         true,
	}
}

// withDefaults sizes a face that was left unsized. Depth and BorderRadius
// are taken as given so flat and square tiles stay expressible.
func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	return c
}

// Validate checks the caller-supplied fields. Negative sizes are not
// rejected; they render as empty rows rather than failing.
func (c Config) Validate() error {
	return validation.Struct(c, "tile")
}
