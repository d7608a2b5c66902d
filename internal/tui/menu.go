package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ActionID identifies a menu action.
type ActionID string

const (
	ActionSetup   ActionID = "setup"
	ActionStatus  ActionID = "status"
	ActionCompile ActionID = "compile"
	ActionSync    ActionID = "sync"
	ActionRemove  ActionID = "remove"
)

// MenuItem is one selectable entry on the menu tab.
type MenuItem struct {
	ID          ActionID
	Icon        string
	Label       string
	Description string
}

// Menu is the navigable action list on the menu tab.
type Menu struct {
	items  []MenuItem
	cursor int
	styles *StyleSet
}

// NewMenu creates the menu with the standard action set.
func NewMenu(styles *StyleSet) Menu {
	return Menu{
		styles: styles,
		items: []MenuItem{
			{ActionSetup, "🧱", "Create Venv", "Install OS deps, create the environment, install pip-tools"},
			{ActionStatus, "📦", "Status", "List packages installed in the environment"},
			{ActionCompile, "🔒", "Compile Requirements", "pip-compile the requirements file into a lock file"},
			{ActionSync, "🔁", "Sync Requirements", "pip-sync the environment to the lock file"},
			{ActionRemove, "🗑", "Remove Venv", "Delete the environment directory"},
		},
	}
}

// Update handles cursor movement and returns the selected item on enter.
func (m Menu) Update(msg tea.Msg) (Menu, *MenuItem) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			item := m.items[m.cursor]
			return m, &item
		}
	}
	return m, nil
}

// View renders the action list.
func (m Menu) View(width int) string {
	var out string
	out += "\n"
	for i, item := range m.items {
		cursor := "  "
		label := m.styles.UnselectedItem.Render(item.Label)
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("❯ ")
			label = m.styles.SelectedItem.Render(item.Label)
		}
		out += fmt.Sprintf("  %s%s  %s\n", cursor, item.Icon, label)
		out += fmt.Sprintf("        %s\n\n", m.styles.DimTxt.Render(item.Description))
	}

	hints := m.styles.KbdKey.Render("↑/↓") + m.styles.KbdDesc.Render(" move  ") +
		m.styles.KbdKey.Render("enter") + m.styles.KbdDesc.Render(" run  ") +
		m.styles.KbdKey.Render("tab") + m.styles.KbdDesc.Render(" terminal  ") +
		m.styles.KbdKey.Render("q") + m.styles.KbdDesc.Render(" quit")
	out += "  " + hints + "\n"
	return out
}

// Cursor returns the current cursor position.
func (m Menu) Cursor() int { return m.cursor }
