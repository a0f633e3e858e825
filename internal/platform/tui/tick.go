// Package tui provides the Bubble Tea front ends for pipeloop: the stage
// viewer, the puzzle browser and the SSH server that hosts them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance an autoplaying viewer by one stage.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one step interval.
func tickCmd(stepsPerSecond int) tea.Cmd {
	if stepsPerSecond <= 0 {
		stepsPerSecond = 1
	}
	interval := time.Second / time.Duration(stepsPerSecond)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
