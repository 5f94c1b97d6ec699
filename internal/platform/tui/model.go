package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/advent-sim/internal/core"
	"github.com/vovakirdan/advent-sim/internal/registry"
)

const (
	maxStepsPerFrame = 1 << 16
	maxFinishSteps   = 100_000_000
	footerHeight     = 2 // status line + help
)

// Source builds a fresh animation. Restart calls it again.
type Source func() (registry.Animation, error)

// Options configures a watch session.
type Options struct {
	Runtime       core.RuntimeConfig
	StepsPerFrame int
}

// Model is the Bubble Tea model that drives one puzzle animation.
type Model struct {
	title         string
	source        Source
	anim          registry.Animation
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          WatchKeyMap
	help          help.Model
	input         core.InputFrame
	gen           uint64 // tick loop id
	stepsPerFrame int
	progress      core.Progress
	err           error
	paused        bool
	quitting      bool
	canGoBack     bool
	backToMenu    bool
}

// NewModel creates a watch model. A source error is shown instead of the
// animation.
func NewModel(title string, source Source, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		title:         title,
		source:        source,
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		config:        cfg,
		keys:          DefaultWatchKeyMap(),
		help:          help.New(),
		input:         core.NewInputFrame(),
		gen:           generations.Add(1),
		stepsPerFrame: core.Clamp(opts.StepsPerFrame, 1, maxStepsPerFrame),
	}
	m.help.Width = cfg.ScreenW
	m.restart()
	return m
}

// restart rebuilds the animation from its source.
func (m *Model) restart() {
	m.anim, m.err = m.source()
	m.progress = core.Progress{}
	if m.anim != nil {
		m.progress = m.anim.Progress()
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			// Scheduled by a watch that was left; let its loop end.
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick. Quit takes effect at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.canGoBack && key.Matches(msg, m.keys.Back) {
		m.backToMenu = true
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleTick applies pending actions and advances the animation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.apply()
	m.input.Clear()

	if !m.paused {
		m.advance(m.stepsPerFrame)
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

func (m *Model) apply() {
	switch {
	case m.input.Has(core.ActionRestart):
		m.restart()
		return
	case m.input.Has(core.ActionFinish):
		m.advance(maxFinishSteps)
		return
	}

	if m.input.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if m.input.Has(core.ActionStep) && m.paused {
		m.advance(1)
	}
	if m.input.Has(core.ActionFaster) {
		m.stepsPerFrame = min(m.stepsPerFrame*2, maxStepsPerFrame)
	}
	if m.input.Has(core.ActionSlower) {
		m.stepsPerFrame = max(m.stepsPerFrame/2, 1)
	}
}

// advance steps the animation up to n times, stopping once it is done.
func (m *Model) advance(n int) {
	if m.anim == nil {
		return
	}
	for range n {
		if m.progress.Done {
			return
		}
		m.progress = m.anim.Step()
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s: %v", m.title, m.err)))
		b.WriteString(strings.Repeat("\n", max(m.screen.Height(), 1)))
	} else if m.anim != nil {
		m.screen.Clear()
		m.anim.Render(m.screen)
		b.WriteString(RenderScreen(m.screen))
		b.WriteString("\n")
	}

	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) status() string {
	line := fmt.Sprintf(" %s  step %d  value %d  x%d", m.title, m.progress.Step, m.progress.Value, m.stepsPerFrame)
	switch {
	case m.progress.Done:
		return doneStyle.Render(line + "  DONE")
	case m.paused:
		return statusStyle.Render(line + "  PAUSED")
	}
	return statusStyle.Render(line)
}

// Progress returns the latest reported progress.
func (m Model) Progress() core.Progress {
	return m.progress
}

// Err returns the error from building the animation, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a local Bubble Tea program and returns the last progress
// when the user quits.
func Run(title string, source Source, opts Options) (core.Progress, error) {
	model := NewModel(title, source, opts)
	if err := model.Err(); err != nil {
		return core.Progress{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return model.Progress(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.Progress(), nil
	}
	return model.Progress(), nil
}
