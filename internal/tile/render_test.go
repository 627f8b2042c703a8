package tile

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitRenderer() Renderer {
	return Renderer{UnitsPerRow: 1, ColumnsPerUnit: 1}
}

func TestLayout_ScenarioGeometry(t *testing.T) {
	t.Parallel()

	r := unitRenderer()

	idle := r.Layout(ComputeFaces(10, 4, "#3498DB", false), 10, 4)
	assert.Equal(t, Layout{
		Columns: 10, Rows: 19,
		FaceStart: 5, FaceEnd: 9,
		ShadowStart: 5, ShadowEnd: 19,
		LabelRow: 7,
	}, idle)

	pressed := r.Layout(ComputeFaces(10, 4, "#3498DB", true), 10, 4)
	assert.Equal(t, Layout{
		Columns: 10, Rows: 19,
		FaceStart: 10, FaceEnd: 14,
		ShadowStart: 10, ShadowEnd: 19,
		LabelRow: 12,
	}, pressed)
}

func TestLayout_BottomEdgeFixedWhileAnimating(t *testing.T) {
	t.Parallel()

	r := DefaultRenderer()
	idle := ComputeFaces(10, 4, "#3498DB", false)
	want := r.Layout(idle, 10, 4).ShadowEnd

	for offset := 5.0; offset <= 10; offset += 0.25 {
		l := r.Layout(idle.WithFaceOffset(offset), 10, 4)
		assert.Equal(t, want, l.ShadowEnd, "offset %v", offset)
	}
}

func TestLayout_DegenerateInputs(t *testing.T) {
	t.Parallel()

	r := Renderer{}
	l := r.Layout(ComputeFaces(-6, -2, "#3498DB", false), 0, 0)
	assert.Equal(t, 1, l.Columns)
	assert.GreaterOrEqual(t, l.FaceEnd, l.FaceStart+1)
	assert.GreaterOrEqual(t, l.ShadowEnd, l.ShadowStart)
	assert.GreaterOrEqual(t, l.Rows, 1)
}

func TestRender_LabelSinksWhenPressed(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig("#3498DB")
	cfg.Depth = 10
	cfg.BorderRadius = 4
	cfg.Label = "7"
	tl, err := New(cfg)
	require.NoError(t, err)

	r := unitRenderer()
	idle := strings.Split(r.Render(tl), "\n")
	tl.PressIn()
	pressed := strings.Split(r.Render(tl), "\n")

	require.Len(t, idle, 19)
	require.Len(t, pressed, 19)
	assert.Equal(t, 7, rowContaining(idle, "7"))
	assert.Equal(t, 12, rowContaining(pressed, "7"))

	for _, line := range idle {
		assert.Equal(t, 10, lipgloss.Width(line))
	}
}

func TestRender_LabelOverridesCannotMoveGeometry(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig("#3498DB")
	cfg.Depth = 10
	cfg.BorderRadius = 4
	cfg.Label = "9"
	cfg.LabelStyle = lipgloss.NewStyle().MarginTop(3).PaddingTop(2).Height(6)
	cfg.ContainerStyle = lipgloss.NewStyle().MarginTop(5).Height(40)
	tl, err := New(cfg)
	require.NoError(t, err)

	lines := strings.Split(unitRenderer().Render(tl), "\n")
	require.Len(t, lines, 19)
	assert.Equal(t, 7, rowContaining(lines, "9"))
}

func TestRender_LongLabelIsClipped(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig("#3498DB")
	cfg.Width = 4
	cfg.Label = "ABCDEFGHIJ"
	tl, err := New(cfg)
	require.NoError(t, err)

	for _, line := range strings.Split(unitRenderer().Render(tl), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 4)
	}
}

func rowContaining(lines []string, text string) int {
	for i, line := range lines {
		if strings.Contains(line, text) {
			return i
		}
	}
	return -1
}
