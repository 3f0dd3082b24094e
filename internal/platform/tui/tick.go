// Package tui provides the Bubble Tea integration for tile2048.
// It handles the terminal UI loop, input mapping, and drives the automatic player.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to let the automatic player make its next move.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
