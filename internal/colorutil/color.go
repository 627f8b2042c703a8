// Package colorutil derives related tones from caller-supplied colours.
//
// Colours are lipgloss colour values: a hex string ("#RGB" or "#RRGGBB")
// or an ANSI palette index ("0" through "255").
package colorutil

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	apperrors "github.com/alexisbeaulieu97/boardtile/pkg/errors"
)

// ShadowDelta is the luminance shift applied to a tile face to get its underside.
const ShadowDelta = -0.2

var errEmpty = errors.New("empty color")

// Parse resolves a hex or ANSI colour into RGB.
func Parse(c lipgloss.Color) (colorful.Color, error) {
	raw := strings.TrimSpace(string(c))
	if raw == "" {
		return colorful.Color{}, apperrors.NewColorError(raw, errEmpty)
	}

	if strings.HasPrefix(raw, "#") {
		parsed, err := colorful.Hex(strings.ToLower(raw))
		if err != nil {
			return colorful.Color{}, apperrors.NewColorError(raw, err)
		}
		return parsed, nil
	}

	index, err := strconv.Atoi(raw)
	if err != nil {
		return colorful.Color{}, apperrors.NewColorError(raw, err)
	}
	switch {
	case index >= 0 && index < 16:
		return termenv.ConvertToRGB(termenv.ANSIColor(index)), nil
	case index >= 16 && index <= 255:
		return termenv.ConvertToRGB(termenv.ANSI256Color(index)), nil
	default:
		return colorful.Color{}, apperrors.NewColorError(raw, errors.New("ansi index out of range"))
	}
}

// Valid reports whether c can be parsed.
func Valid(c lipgloss.Color) bool {
	_, err := Parse(c)
	return err == nil
}

// DeriveLuminance scales every channel of c by (1 + delta), clamped to the
// displayable range. Channel ratios are preserved, so the hue stays put
// while the colour gets darker (negative delta) or lighter (positive).
// The result is always a lowercase "#rrggbb" hex colour.
func DeriveLuminance(c lipgloss.Color, delta float64) (lipgloss.Color, error) {
	parsed, err := Parse(c)
	if err != nil {
		return "", err
	}

	factor := 1 + delta
	shifted := colorful.Color{
		R: scaleChannel(parsed.R, factor),
		G: scaleChannel(parsed.G, factor),
		B: scaleChannel(parsed.B, factor),
	}
	return lipgloss.Color(shifted.Clamped().Hex()), nil
}

// Shadow returns the underside tone for a tile face colour.
func Shadow(c lipgloss.Color) (lipgloss.Color, error) {
	return DeriveLuminance(c, ShadowDelta)
}

// Luminance returns the relative lightness of c in [0, 1] (CIE L*).
func Luminance(c lipgloss.Color) (float64, error) {
	parsed, err := Parse(c)
	if err != nil {
		return 0, err
	}
	l, _, _ := parsed.Clamped().Lab()
	return l, nil
}

// Contrast picks black or white text, whichever reads better on c.
func Contrast(c lipgloss.Color) lipgloss.Color {
	l, err := Luminance(c)
	if err != nil || l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// Mix blends a toward b by t in Lab space; t is clamped to [0, 1].
func Mix(a, b lipgloss.Color, t float64) (lipgloss.Color, error) {
	ca, err := Parse(a)
	if err != nil {
		return "", err
	}
	cb, err := Parse(b)
	if err != nil {
		return "", err
	}
	t = math.Max(0, math.Min(1, t))
	return lipgloss.Color(ca.BlendLab(cb, t).Clamped().Hex()), nil
}

func scaleChannel(v, factor float64) float64 {
	// round to the 8-bit grid so repeated derivations stay stable
	scaled := math.Round(v*255*factor) / 255
	return math.Max(0, math.Min(1, scaled))
}
