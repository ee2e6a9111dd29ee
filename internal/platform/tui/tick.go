// Package tui provides the Bubble Tea host for Snake Extreme.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per host frame. It carries the frame timestamp so the
// model can measure real elapsed time.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
