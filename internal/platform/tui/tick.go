// Package tui provides the Bubble Tea integration for Wall Jump.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// loop that scheduled it so ticks from a torn-down loop are dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// one frame at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
