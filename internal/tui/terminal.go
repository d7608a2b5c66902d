package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/venvdesk/venvdesk/config"
)

// Terminal is the log tab: a scroll-following viewport over the append-only
// log buffer plus a free-text command field with history recall.
type Terminal struct {
	styles  *StyleSet
	vp      viewport.Model
	input   textinput.Model
	lines   []string
	history *config.History
	histPos int // -1 means the live draft
	draft   string
	ready   bool
}

// NewTerminal creates the terminal tab.
func NewTerminal(styles *StyleSet, history *config.History) Terminal {
	ti := textinput.New()
	ti.Placeholder = "command to run inside the venv"
	ti.Prompt = styles.AccentTxt.Render("$ ")
	ti.CharLimit = 512

	return Terminal{
		styles:  styles,
		input:   ti,
		history: history,
		histPos: -1,
	}
}

// Resize fits the viewport into the given content area.
func (t *Terminal) Resize(width, height int) {
	// One line for the input, one for the hint row.
	vpHeight := height - 2
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !t.ready {
		t.vp = viewport.New(width, vpHeight)
		t.ready = true
	} else {
		t.vp.Width = width
		t.vp.Height = vpHeight
	}
	t.input.Width = width - 6
	t.refresh()
}

// AppendLines adds lines to the log buffer and scrolls to the end.
func (t *Terminal) AppendLines(lines []string) {
	for _, line := range lines {
		// Child output may itself span lines; keep each on its own row.
		t.lines = append(t.lines, strings.Split(strings.TrimRight(line, "\n"), "\n")...)
	}
	t.refresh()
}

func (t *Terminal) refresh() {
	if !t.ready {
		return
	}
	t.vp.SetContent(strings.Join(t.lines, "\n"))
	t.vp.GotoBottom()
}

// Focus gives keyboard focus to the command field.
func (t *Terminal) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes focus from the command field.
func (t *Terminal) Blur() {
	t.input.Blur()
}

// Update handles input. It returns the entered command line on enter ("" if
// nothing was submitted) and any follow-up command.
func (t Terminal) Update(msg tea.Msg) (Terminal, string, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			cmdline := t.input.Value()
			t.input.SetValue("")
			t.histPos = -1
			t.draft = ""
			return t, cmdline, nil
		case "up":
			t.recall(1)
			return t, "", nil
		case "down":
			t.recall(-1)
			return t, "", nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			t.vp, cmd = t.vp.Update(msg)
			return t, "", cmd
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, "", cmd
}

// recall moves through the command history; direction 1 goes to older
// entries, -1 back toward the live draft.
func (t *Terminal) recall(direction int) {
	entries := t.history.Entries()
	if len(entries) == 0 {
		return
	}

	if t.histPos == -1 && direction == 1 {
		t.draft = t.input.Value()
	}
	pos := t.histPos + direction
	if pos < -1 {
		pos = -1
	}
	if pos >= len(entries) {
		pos = len(entries) - 1
	}
	t.histPos = pos

	if pos == -1 {
		t.input.SetValue(t.draft)
	} else {
		t.input.SetValue(entries[pos])
	}
	t.input.CursorEnd()
}

// View renders the log viewport above the command field.
func (t Terminal) View() string {
	if !t.ready {
		return ""
	}

	hints := t.styles.KbdKey.Render("enter") + t.styles.KbdDesc.Render(" run  ") +
		t.styles.KbdKey.Render("↑/↓") + t.styles.KbdDesc.Render(" history  ") +
		t.styles.KbdKey.Render("pgup/pgdn") + t.styles.KbdDesc.Render(" scroll  ") +
		t.styles.KbdKey.Render("tab") + t.styles.KbdDesc.Render(" menu")

	return t.vp.View() + "\n" + t.input.View() + "\n  " + hints
}

// Lines returns the log buffer.
func (t Terminal) Lines() []string { return t.lines }
