package board

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case RevealMsg:
		if msg.Index >= 0 && msg.Index < len(m.slots) {
			m.slots[msg.Index].revealed = true
			m.logger.WithFields(map[string]any{"index": msg.Index}).Debug("tile revealed")
		}
		return m, nil

	case ReleaseMsg:
		// a newer key press on the same tile or a pointer hold owns it now
		if msg.Index < 0 || msg.Index >= len(m.slots) ||
			msg.Seq != m.slots[msg.Index].keySeq || msg.Index == m.held {
			return m, nil
		}
		return m.release(msg.Index)

	case FrameMsg:
		moving := false
		for _, s := range m.slots {
			if s.motion.Step() {
				moving = true
			}
		}
		if !moving {
			m.animating = false
			return m, nil
		}
		return m, frameCmd(m.spring.FrameInterval())
	}

	return m, nil
}

// handleKeyPress moves the cursor and presses the focused tile
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns)

	case key.Matches(msg, m.keys.Press):
		if len(m.slots) == 0 || !m.slots[m.cursor].revealed {
			return m, nil
		}
		i := m.cursor
		m.slots[i].keySeq++
		next, cmd := m.press(i)
		return next, tea.Batch(cmd, releaseCmd(i, m.slots[i].keySeq, m.keyHold))
	}

	return m, nil
}

// handleMouse turns left-button press/release into tile press events.
// The release goes to the tile that took the press wherever the pointer is.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		i := m.hit(msg.X, msg.Y)
		if i < 0 {
			return m, nil
		}
		m.cursor = i
		next, cmd := m.press(i)
		if next.slots[i].tile.Pressed() {
			next.held = i
		}
		return next, cmd

	case tea.MouseActionRelease:
		if m.held < 0 {
			return m, nil
		}
		i := m.held
		m.held = -1
		return m.release(i)
	}

	return m, nil
}

func (m Model) press(i int) (Model, tea.Cmd) {
	m.slots[i].tile.PressIn()
	return m, m.syncMotions()
}

func (m Model) release(i int) (Model, tea.Cmd) {
	if i < 0 || i >= len(m.slots) {
		return m, nil
	}
	m.slots[i].tile.PressOut()
	return m, m.syncMotions()
}

// syncMotions points every motion at its tile's current face offset. A
// pending layout-animation request eases them there; otherwise they jump.
func (m *Model) syncMotions() tea.Cmd {
	animate := m.spring.Take()
	for _, s := range m.slots {
		target := s.tile.Faces().Face.OffsetTop
		if s.motion.Target() == target {
			continue
		}
		if animate {
			s.motion.Retarget(target)
		} else {
			s.motion.Jump(target)
		}
	}

	if !animate || m.animating {
		return nil
	}
	m.animating = true
	return frameCmd(m.spring.FrameInterval())
}

func (m *Model) moveCursor(delta int) {
	if len(m.slots) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= len(m.slots) {
		return
	}
	m.cursor = next
}
