package board

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// revealCmd reveals a tile after its entry delay
func revealCmd(index int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg {
			return RevealMsg{Index: index}
		}
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return RevealMsg{Index: index}
	})
}

// frameCmd schedules the next animation frame
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

// releaseCmd lifts a key-pressed tile after the hold time
func releaseCmd(index, seq int, hold time.Duration) tea.Cmd {
	return tea.Tick(hold, func(time.Time) tea.Msg {
		return ReleaseMsg{Index: index, Seq: seq}
	})
}
