// Package tui provides the Bubble Tea front end for Minesweeper: input
// mapping, board layout, terminal output and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockMsg is sent to refresh the play-time display.
type ClockMsg time.Time

// clockInterval is how often the HUD clock repaints.
const clockInterval = time.Second

// clockCmd returns a Bubble Tea command that sends one ClockMsg after interval.
func clockCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}
