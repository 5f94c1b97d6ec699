package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/advent-sim/internal/core"
)

// WatchKeyMap defines key bindings for the visualizer.
type WatchKeyMap struct {
	Pause   key.Binding
	Step    key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Restart key.Binding
	Finish  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k WatchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Faster, k.Slower, k.Finish, k.Restart, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k WatchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step, k.Finish},
		{k.Faster, k.Slower},
		{k.Restart, k.Back, k.Quit},
	}
}

// DefaultWatchKeyMap returns the default visualizer bindings.
func DefaultWatchKeyMap() WatchKeyMap {
	return WatchKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "step"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "=", "up"),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "down"),
			key.WithHelp("-", "slower"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Finish: key.NewBinding(
			key.WithKeys("f", "end"),
			key.WithHelp("f", "finish"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action maps a key message to a visualizer action.
// Back is reported as ActionQuit; callers that have somewhere to go back to
// check the Back binding first.
func (k WatchKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit), key.Matches(msg, k.Back):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Step):
		return core.ActionStep
	case key.Matches(msg, k.Faster):
		return core.ActionFaster
	case key.Matches(msg, k.Slower):
		return core.ActionSlower
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Finish):
		return core.ActionFinish
	}
	return core.ActionNone
}

// MenuKeyMap defines key bindings for the puzzle picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Part   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Part, k.Select, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Part, k.Select, k.Quit}}
}

// DefaultMenuKeyMap returns the default picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Part: key.NewBinding(
			key.WithKeys("tab", "left", "right"),
			key.WithHelp("tab", "toggle part"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
