package colorutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/boardtile/pkg/errors"
)

func TestDeriveLuminance_Darkens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input lipgloss.Color
		delta float64
		want  lipgloss.Color
	}{
		{name: "blue tile", input: "#3498DB", delta: -0.2, want: "#2a7aaf"},
		{name: "white", input: "#ffffff", delta: -0.2, want: "#cccccc"},
		{name: "black stays black", input: "#000000", delta: -0.2, want: "#000000"},
		{name: "short hex", input: "#f00", delta: -0.2, want: "#cc0000"},
		{name: "lighten clamps", input: "#ffffff", delta: 0.5, want: "#ffffff"},
		{name: "zero delta", input: "#3498db", delta: 0, want: "#3498db"},
		{name: "ansi red", input: "9", delta: -0.2, want: "#cc0000"},
		{name: "ansi 256 red", input: "196", delta: -0.2, want: "#cc0000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DeriveLuminance(tt.input, tt.delta)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveLuminance_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := DeriveLuminance("#3498DB", ShadowDelta)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := DeriveLuminance("#3498DB", ShadowDelta)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestDeriveLuminance_PreservesHue(t *testing.T) {
	t.Parallel()

	base, err := Parse("#3498DB")
	require.NoError(t, err)
	shadow, err := Shadow("#3498DB")
	require.NoError(t, err)
	parsed, err := Parse(shadow)
	require.NoError(t, err)

	baseHue, _, baseLight := base.Hsl()
	shadowHue, _, shadowLight := parsed.Hsl()
	assert.InDelta(t, baseHue, shadowHue, 1.0)
	assert.Less(t, shadowLight, baseLight)
}

func TestDeriveLuminance_InvalidColor(t *testing.T) {
	t.Parallel()

	for _, raw := range []lipgloss.Color{"", "#zzzzzz", "#12", "blue", "256", "-1"} {
		_, err := DeriveLuminance(raw, ShadowDelta)
		require.Error(t, err, "color %q", raw)

		var colorErr *apperrors.ColorError
		require.ErrorAs(t, err, &colorErr)
		assert.False(t, Valid(raw))
	}
}

func TestContrast(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.Color("#000000"), Contrast("#ffffff"))
	assert.Equal(t, lipgloss.Color("#ffffff"), Contrast("#000000"))
	assert.Equal(t, lipgloss.Color("#000000"), Contrast("not-a-color"))
}

func TestMix(t *testing.T) {
	t.Parallel()

	start, err := Mix("#000000", "#ffffff", 0)
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#000000"), start)

	end, err := Mix("#000000", "#ffffff", 2)
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#ffffff"), end)

	_, err = Mix("#000000", "nope", 0.5)
	require.Error(t, err)
}
