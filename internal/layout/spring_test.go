package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpringRequestsCollapse(t *testing.T) {
	t.Parallel()

	s := NewSpring(SpringOptions{})
	assert.False(t, s.Pending())

	s.RequestLayoutAnimation()
	s.RequestLayoutAnimation()
	assert.True(t, s.Pending())

	assert.True(t, s.Take())
	assert.False(t, s.Take(), "a drained request does not fire twice")
}

func TestSpringFrameInterval(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Second/60, NewSpring(SpringOptions{}).FrameInterval())
	assert.Equal(t, time.Second/30, NewSpring(SpringOptions{FPS: 30}).FrameInterval())
}

func TestMotionSettlesOnTarget(t *testing.T) {
	t.Parallel()

	m := NewSpring(SpringOptions{}).NewMotion(5)
	require.True(t, m.Settled())
	require.False(t, m.Step())

	m.Retarget(10)
	moved := false
	for i := 0; i < 600 && m.Step(); i++ {
		moved = true
	}

	assert.True(t, moved)
	assert.True(t, m.Settled())
	assert.Equal(t, 10.0, m.Position())
}

func TestMotionEasesRatherThanJumps(t *testing.T) {
	t.Parallel()

	m := NewSpring(SpringOptions{}).NewMotion(0)
	m.Retarget(10)
	require.True(t, m.Step())

	assert.Greater(t, m.Position(), 0.0)
	assert.Less(t, m.Position(), 10.0)
	assert.Equal(t, 10.0, m.Target())
}

func TestMotionJump(t *testing.T) {
	t.Parallel()

	m := NewSpring(SpringOptions{}).NewMotion(0)
	m.Retarget(10)
	m.Step()
	m.Jump(3)

	assert.True(t, m.Settled())
	assert.Equal(t, 3.0, m.Position())
}
