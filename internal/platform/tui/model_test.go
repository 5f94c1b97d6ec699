package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/advent-sim/internal/core"
	"github.com/vovakirdan/advent-sim/internal/registry"
)

// counter is an animation that finishes after limit steps.
type counter struct {
	steps uint64
	limit uint64
}

func (c *counter) Step() core.Progress {
	if c.steps < c.limit {
		c.steps++
	}
	return c.Progress()
}

func (c *counter) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "counter")
}

func (c *counter) Progress() core.Progress {
	return core.Progress{Step: c.steps, Value: int(c.steps) * 10, Done: c.steps >= c.limit}
}

func counterSource(limit uint64) Source {
	return func() (registry.Animation, error) {
		return &counter{limit: limit}, nil
	}
}

func testOptions() Options {
	return Options{Runtime: core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30}, StepsPerFrame: 1}
}

func press(t *testing.T, m Model, keys string) Model {
	t.Helper()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	if keys == " " {
		msg = tea.KeyMsg{Type: tea.KeySpace}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{Gen: m.gen})
	return next.(Model)
}

func TestModelSteps(t *testing.T) {
	m := NewModel("test", counterSource(100), testOptions())
	require.NoError(t, m.Err())

	m = tick(tick(m))
	assert.Equal(t, uint64(2), m.Progress().Step)

	m = press(t, m, "+")
	m = tick(m) // applies the speed change and then steps twice
	assert.Equal(t, uint64(4), m.Progress().Step)

	m = press(t, m, "-")
	m = tick(m)
	assert.Equal(t, uint64(5), m.Progress().Step)
}

func TestModelPauseAndStep(t *testing.T) {
	m := NewModel("test", counterSource(100), testOptions())

	m = tick(press(t, m, " "))
	assert.True(t, m.paused)
	assert.Equal(t, uint64(0), m.Progress().Step)

	m = tick(m)
	assert.Equal(t, uint64(0), m.Progress().Step)

	m = tick(press(t, m, "n"))
	assert.Equal(t, uint64(1), m.Progress().Step)
	assert.Contains(t, m.View(), "PAUSED")
}

func TestModelFinishAndRestart(t *testing.T) {
	m := NewModel("test", counterSource(50), testOptions())

	m = tick(press(t, m, "f"))
	assert.True(t, m.Progress().Done)
	assert.Equal(t, 500, m.Progress().Value)
	assert.Contains(t, m.View(), "DONE")

	m = tick(m)
	assert.Equal(t, uint64(50), m.Progress().Step)

	m = tick(press(t, m, "r"))
	assert.Equal(t, uint64(1), m.Progress().Step)
}

func TestModelQuitAndBack(t *testing.T) {
	m := NewModel("test", counterSource(5), testOptions())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, next.(Model).IsQuitting())
	require.NotNil(t, cmd)
	assert.Empty(t, next.(Model).View())

	m = NewModel("test", counterSource(5), testOptions())
	m.canGoBack = true
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(Model).BackToMenu())
	assert.False(t, next.(Model).IsQuitting())
}

func TestModelSourceError(t *testing.T) {
	boom := errors.New("boom")
	m := NewModel("broken", func() (registry.Animation, error) { return nil, boom }, testOptions())
	assert.ErrorIs(t, m.Err(), boom)

	m = tick(m)
	assert.Contains(t, m.View(), "boom")

	_, err := Run("broken", func() (registry.Animation, error) { return nil, boom }, testOptions())
	assert.ErrorIs(t, err, boom)
}

func TestModelResize(t *testing.T) {
	m := NewModel("test", counterSource(5), testOptions())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	assert.Equal(t, 60, m.screen.Width())
	assert.Equal(t, 20-footerHeight, m.screen.Height())
}

func TestWatchKeyMap(t *testing.T) {
	keys := DefaultWatchKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, core.ActionStep},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionStep},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")}, core.ActionFaster},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")}, core.ActionSlower},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")}, core.ActionFinish},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, keys.Action(tt.msg), tt.msg.String())
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '#', core.ColorRed)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[0], "#")
	assert.Contains(t, lines[1], "xyz")
}

func TestModelDropsForeignTicks(t *testing.T) {
	old := NewModel("old", counterSource(100), testOptions())
	m := NewModel("new", counterSource(100), testOptions())
	require.NotEqual(t, old.gen, m.gen)

	next, cmd := m.Update(TickMsg{Gen: old.gen})
	m = next.(Model)
	assert.Nil(t, cmd, "a foreign tick must not schedule another one")
	assert.Equal(t, uint64(0), m.Progress().Step)

	next, cmd = m.Update(TickMsg{Gen: m.gen})
	assert.NotNil(t, cmd)
	assert.Equal(t, uint64(1), next.(Model).Progress().Step)
}
