// Package tui implements the two-tab terminal interface: a menu of
// environment actions and a terminal-like log view with a command field.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/venvdesk/venvdesk/config"
	"github.com/venvdesk/venvdesk/runner"
	"github.com/venvdesk/venvdesk/venv"
)

const (
	tabMenu = iota
	tabTerminal
)

// App is the top-level bubbletea model.
type App struct {
	styles   *StyleSet
	version  string
	settings config.Settings
	run      runner.Runner
	history  *config.History

	activeTab int
	menu      Menu
	term      Terminal
	spin      spinner.Model

	running      bool
	runningLabel string
	width        int
	height       int
}

// NewApp assembles the TUI from its injected collaborators.
func NewApp(theme TermTheme, settings config.Settings, run runner.Runner, history *config.History, version string) App {
	styles := NewStyleSet(theme)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return App{
		styles:   styles,
		version:  version,
		settings: settings,
		run:      run,
		history:  history,
		menu:     NewMenu(styles),
		term:     NewTerminal(styles, history),
		spin:     sp,
		width:    80,
		height:   24,
	}
}

// Init starts the cursor blink for the command field.
func (a App) Init() tea.Cmd {
	return a.term.Focus()
}

// newEnv builds the venv handle all actions run against, reporting into the
// given sink.
func (a App) newEnv(sink runner.Sink) *venv.Env {
	return venv.New(a.settings.VenvName, a.settings.PythonInterpreter, a.run, sink)
}

// dispatch runs a menu action as a tea command. The action blocks until its
// child processes exit; the collected sink lines come back in one message.
func (a *App) dispatch(id ActionID, label string) tea.Cmd {
	a.running = true
	a.runningLabel = label

	settings := a.settings
	env := a.newEnv(nil)

	return tea.Batch(a.spin.Tick, func() tea.Msg {
		sink := &runner.BufferSink{}
		env.Sink = sink
		ctx := context.Background()

		switch id {
		case ActionSetup:
			env.Setup(ctx, settings.PythonVersion, settings.PipToolsVersion)
		case ActionStatus:
			env.Status(ctx)
		case ActionCompile:
			sink.Append("Running pip-compile...")
			env.Compile(ctx, settings.RequirementsFile, settings.CompileRetries)
		case ActionSync:
			sink.Append("Running pip-sync...")
			env.Sync(ctx)
		case ActionRemove:
			if err := env.Remove(); err != nil {
				sink.Append(err.Error())
			} else {
				sink.Append("Virtual environment removed.")
			}
		}
		return actionDoneMsg{lines: sink.Lines()}
	})
}

// dispatchShell runs a free-text command line from the terminal tab.
func (a *App) dispatchShell(cmdline string) tea.Cmd {
	if strings.TrimSpace(cmdline) != "" {
		a.running = true
		a.runningLabel = cmdline
		a.history.Add(cmdline)
	}

	env := a.newEnv(nil)

	return tea.Batch(a.spin.Tick, func() tea.Msg {
		sink := &runner.BufferSink{}
		env.Sink = sink
		env.Shell(context.Background(), cmdline)
		return actionDoneMsg{lines: sink.Lines()}
	})
}

// Update handles messages for the app.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.term.Resize(msg.Width-4, msg.Height-7)
		return a, nil

	case spinner.TickMsg:
		if !a.running {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case actionDoneMsg:
		a.running = false
		a.runningLabel = ""
		a.term.AppendLines(msg.lines)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab", "shift+tab":
			if a.activeTab == tabMenu {
				a.activeTab = tabTerminal
				return a, a.term.Focus()
			}
			a.activeTab = tabMenu
			a.term.Blur()
			return a, nil
		}

		if a.activeTab == tabMenu {
			if msg.String() == "q" {
				return a, tea.Quit
			}
			var selected *MenuItem
			a.menu, selected = a.menu.Update(msg)
			if selected != nil && !a.running {
				// The original switches to the log view when an action starts.
				a.activeTab = tabTerminal
				cmd := a.dispatch(selected.ID, selected.Label)
				return a, tea.Batch(cmd, a.term.Focus())
			}
			return a, nil
		}

		var cmdline string
		var cmd tea.Cmd
		a.term, cmdline, cmd = a.term.Update(msg)
		if cmdline != "" || isEnter(msg) {
			if a.running {
				return a, cmd
			}
			return a, tea.Batch(cmd, a.dispatchShell(cmdline))
		}
		return a, cmd
	}

	// Forward everything else (cursor blink etc.) to the terminal tab.
	var cmd tea.Cmd
	a.term, _, cmd = a.term.Update(msg)
	return a, cmd
}

func isEnter(msg tea.KeyMsg) bool {
	return msg.String() == "enter"
}

// View renders the banner, tab bar, and the active tab.
func (a App) View() string {
	var out strings.Builder

	out.WriteString("\n")
	out.WriteString(RenderBanner(a.styles, a.version, a.width))
	out.WriteString(a.renderTabs())
	out.WriteString("\n")

	if a.activeTab == tabMenu {
		out.WriteString(a.menu.View(a.width))
	} else {
		out.WriteString(a.term.View())
	}

	if a.running {
		out.WriteString("\n  " + a.spin.View() + a.styles.DimTxt.Render(" running: "+a.runningLabel))
	}
	out.WriteString("\n")
	return out.String()
}

func (a App) renderTabs() string {
	menuTab := a.styles.TabInactive.Render("Menu")
	termTab := a.styles.TabInactive.Render("Terminal")
	if a.activeTab == tabMenu {
		menuTab = a.styles.TabActive.Render("Menu")
	} else {
		termTab = a.styles.TabActive.Render("Terminal")
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Bottom, menuTab, " ", termTab)
}
