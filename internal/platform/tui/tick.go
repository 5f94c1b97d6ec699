// Package tui runs puzzle animations in a terminal, locally or over SSH.
// It owns the Bubble Tea loop, key bindings and colour rendering; puzzles only
// draw into a core.Screen.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the animation by one frame. Gen identifies the
// watch whose loop scheduled it; ticks of any other watch are dropped.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// generations hands out a distinct tick loop id to every watch model.
var generations atomic.Uint64

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
