// Package tui provides the Bubble Tea integration for the bakery game.
// It handles the terminal UI loop, input mapping, and round orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bakery-catch/internal/core"
)

// TickMsg is sent to trigger a game simulation tick. Frame is the scheduler
// token the tick was issued under; a stale token means the tick is dropped.
type TickMsg struct {
	Frame core.Frame
	At    time.Time
}

// tickCmd returns a Bubble Tea command that delivers one tick for frame.
func tickCmd(tickRate int, frame core.Frame) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Frame: frame, At: t}
	})
}
