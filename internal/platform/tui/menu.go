package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/advent-sim/internal/registry"
)

// MenuModel is the Bubble Tea model for the puzzle picker.
type MenuModel struct {
	puzzles  []registry.Info
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	part     registry.Part
	width    int
	height   int
	quitting bool
	selected *registry.Info
}

// NewMenuModel creates a picker over every registered puzzle.
func NewMenuModel(width, height int) MenuModel {
	m := MenuModel{
		puzzles: registry.List(),
		help:    help.New(),
		keys:    DefaultMenuKeyMap(),
		part:    registry.Part1,
		width:   width,
		height:  height,
	}
	m.help.Width = width
	m.table = m.createTable()
	return m
}

// createTable builds the puzzle table for the current size.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Day", Width: 4},
		{Title: "ID", Width: 8},
		{Title: "Alias", Width: 8},
		{Title: "Title", Width: max(m.width-32, 18)},
	}

	rows := make([]table.Row, len(m.puzzles))
	for i, p := range m.puzzles {
		rows[i] = table.Row{strconv.Itoa(p.Day), p.ID, p.Slug, p.Title}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Part):
			if m.part == registry.Part1 {
				m.part = registry.Part2
			} else {
				m.part = registry.Part1
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.puzzles) {
				selected := m.puzzles[i]
				m.selected = &selected
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("A D V E N T   S I M", m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Select a puzzle (%v)", m.part), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Selected returns the chosen puzzle, or nil if none was chosen yet.
func (m MenuModel) Selected() *registry.Info {
	return m.selected
}

// Part returns the part the picker will watch.
func (m MenuModel) Part() registry.Part {
	return m.part
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
