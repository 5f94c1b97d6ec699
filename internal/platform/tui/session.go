package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/advent-sim/internal/config"
	"github.com/vovakirdan/advent-sim/internal/registry"
)

// Catalog turns a puzzle name into an animation source. Inputs are read from
// InputDir/<id>.txt when that file exists, otherwise the embedded sample is used.
type Catalog struct {
	Config   config.Config
	InputDir string
}

// Input returns the input the catalog would use for p.
func (c Catalog) Input(p registry.Puzzle) (string, error) {
	if c.InputDir == "" {
		return p.Sample().Input, nil
	}
	data, err := os.ReadFile(filepath.Join(c.InputDir, p.ID()+".txt"))
	if errors.Is(err, fs.ErrNotExist) {
		return p.Sample().Input, nil
	}
	if err != nil {
		return "", fmt.Errorf("read input for %s: %w", p.ID(), err)
	}
	return string(data), nil
}

// Source resolves name and returns a display title and an animation source
// for part.
func (c Catalog) Source(name string, part registry.Part) (string, Source, error) {
	p, err := registry.Create(name, c.Config)
	if err != nil {
		return "", nil, err
	}
	title := fmt.Sprintf("Day %d: %s (%v)", p.Day(), p.Title(), part)
	src := func() (registry.Animation, error) {
		input, err := c.Input(p)
		if err != nil {
			return nil, err
		}
		return p.Animate(input, part)
	}
	return title, src, nil
}

// SessionModel manages the picker -> watch -> picker flow. It is the
// top-level model for SSH sessions and for local runs without a puzzle.
type SessionModel struct {
	catalog  Catalog
	opts     Options
	menu     MenuModel
	watch    *Model
	quitting bool
}

// NewSessionModel creates a session that starts in the picker.
func NewSessionModel(catalog Catalog, opts Options) SessionModel {
	return SessionModel{
		catalog: catalog,
		opts:    opts,
		menu:    NewMenuModel(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// StartWatching switches the session straight to a puzzle, as if it had
// been picked from the menu.
func (m SessionModel) StartWatching(name string, part registry.Part) (SessionModel, error) {
	title, src, err := m.catalog.Source(name, part)
	if err != nil {
		return m, err
	}
	w := NewModel(title, src, m.opts)
	w.canGoBack = true
	m.watch = &w
	return m, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.watch != nil {
		return m.watch.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.watch != nil {
		return m.updateWatch(msg)
	}
	if _, ok := msg.(TickMsg); ok {
		// The picker has no tick loop.
		return m, nil
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		next, err := m.StartWatching(selected.ID, m.menu.Part())
		if err != nil {
			// The menu only lists registered puzzles.
			return m, nil
		}
		return next, next.watch.Init()
	}

	return m, cmd
}

// updateWatch handles updates when a puzzle is being watched.
func (m SessionModel) updateWatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.watch.Update(msg)
	if watchModel, ok := newModel.(Model); ok {
		m.watch = &watchModel
	}

	if m.watch.BackToMenu() {
		m.watch = nil
		m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.menu.Init()
	}

	if m.watch.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.watch != nil {
		return m.watch.View()
	}
	return m.menu.View()
}

// RunSession starts the picker locally.
func RunSession(catalog Catalog, opts Options) error {
	p := tea.NewProgram(NewSessionModel(catalog, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
