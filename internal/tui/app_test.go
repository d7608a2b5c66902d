package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/venvdesk/venvdesk/config"
	"github.com/venvdesk/venvdesk/runner"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{}
}

func newTestApp(t *testing.T) App {
	t.Helper()
	history, err := config.LoadHistory(filepath.Join(t.TempDir(), ".venvdesk_history"))
	if err != nil {
		t.Fatal(err)
	}
	return NewApp(DarkTheme, config.Default(), runner.NewMockRunner(), history, "test")
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenu(NewStyleSet(DarkTheme))

	m, selected := m.Update(keyMsg("down"))
	if selected != nil {
		t.Fatal("down selected an item")
	}
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor())
	}

	m, selected = m.Update(keyMsg("enter"))
	if selected == nil || selected.ID != ActionStatus {
		t.Fatalf("selected = %+v, want status action", selected)
	}

	// Cursor stops at the ends.
	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyMsg("up"))
	}
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0 after repeated up", m.Cursor())
	}
}

func TestMenuViewListsAllActions(t *testing.T) {
	m := NewMenu(NewStyleSet(DarkTheme))
	view := m.View(80)

	for _, label := range []string{"Create Venv", "Status", "Compile Requirements", "Sync Requirements", "Remove Venv"} {
		if !strings.Contains(view, label) {
			t.Errorf("menu view missing %q", label)
		}
	}
}

func TestTabSwitching(t *testing.T) {
	a := newTestApp(t)

	model, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	a = model.(App)
	if a.activeTab != tabMenu {
		t.Fatalf("activeTab = %d, want menu", a.activeTab)
	}

	model, _ = a.Update(keyMsg("tab"))
	a = model.(App)
	if a.activeTab != tabTerminal {
		t.Errorf("activeTab = %d, want terminal after tab", a.activeTab)
	}

	model, _ = a.Update(keyMsg("tab"))
	a = model.(App)
	if a.activeTab != tabMenu {
		t.Errorf("activeTab = %d, want menu after second tab", a.activeTab)
	}
}

func TestMenuSelectionSwitchesToTerminal(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	a = model.(App)

	model, cmd := a.Update(keyMsg("enter"))
	a = model.(App)

	if a.activeTab != tabTerminal {
		t.Errorf("activeTab = %d, want terminal after running an action", a.activeTab)
	}
	if !a.running {
		t.Error("running = false, want true while the action executes")
	}
	if cmd == nil {
		t.Error("expected a command to execute the action")
	}
}

func TestActionDoneAppendsToLog(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	a = model.(App)

	model, _ = a.Update(actionDoneMsg{lines: []string{"Package  Version", "pip      24.0"}})
	a = model.(App)

	joined := strings.Join(a.term.Lines(), "\n")
	if !strings.Contains(joined, "pip      24.0") {
		t.Errorf("log = %q, want appended action output", joined)
	}
	if a.running {
		t.Error("running = true after actionDoneMsg")
	}
}

func TestTerminalHistoryRecall(t *testing.T) {
	styles := NewStyleSet(DarkTheme)
	history, _ := config.LoadHistory(filepath.Join(t.TempDir(), ".venvdesk_history"))
	history.Add("pip list")
	history.Add("python --version")

	term := NewTerminal(styles, history)
	term.Resize(80, 20)
	term.Focus()

	term, _, _ = term.Update(keyMsg("up"))
	if got := term.input.Value(); got != "python --version" {
		t.Errorf("first recall = %q, want newest entry", got)
	}

	term, _, _ = term.Update(keyMsg("up"))
	if got := term.input.Value(); got != "pip list" {
		t.Errorf("second recall = %q, want older entry", got)
	}

	term, _, _ = term.Update(keyMsg("down"))
	if got := term.input.Value(); got != "python --version" {
		t.Errorf("recall after down = %q", got)
	}
}

func TestTerminalEnterReturnsCommandLine(t *testing.T) {
	styles := NewStyleSet(DarkTheme)
	history, _ := config.LoadHistory(filepath.Join(t.TempDir(), ".venvdesk_history"))

	term := NewTerminal(styles, history)
	term.Resize(80, 20)
	term.Focus()
	term.input.SetValue("pip list")

	term, cmdline, _ := term.Update(keyMsg("enter"))
	if cmdline != "pip list" {
		t.Errorf("cmdline = %q, want pip list", cmdline)
	}
	if term.input.Value() != "" {
		t.Errorf("input = %q, want cleared", term.input.Value())
	}
}
