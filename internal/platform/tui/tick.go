// Package tui provides the Bubble Tea front end for frogger.
// It runs the redraw loop, feeds the fixed-timestep simulation, maps keys to
// actions, and serves sessions over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the redraw rate when none is configured.
const DefaultFPS = 60

// TickMsg is sent on every redraw frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after one frame.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
