// Package tui runs Breakout in a terminal with Bubble Tea, locally or
// over SSH through Wish. Each Bubble Tea tick drives one frame of the
// game's frame queue.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent at every display frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one frame interval.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
