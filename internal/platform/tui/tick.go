// Package tui runs arcade games inside a Bubble Tea program: the tick loop,
// key and mouse mapping, menus, the scoreboard and score persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// TickMsg drives one Step of the running game.
type TickMsg time.Time

// tickInterval is the wall-clock period of one tick. It matches the dt that
// Flappy Bird integrates per Step, so the bird falls in real time.
func tickInterval(cfg core.RuntimeConfig) time.Duration {
	return time.Duration(cfg.TickSeconds() * float64(time.Second))
}

// tickCmd schedules the next TickMsg.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(tickInterval(cfg), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
