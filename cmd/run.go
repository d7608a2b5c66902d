package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/venvdesk/venvdesk/config"
	"github.com/venvdesk/venvdesk/internal/tui"
	"github.com/venvdesk/venvdesk/runner"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive two-tab desk",
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use the setup/status/compile/sync/exec subcommands instead")
	}

	settings, err := config.LoadSettings(cfgFile)
	if err != nil {
		return err
	}

	history, err := config.LoadHistory(config.DefaultHistoryFile)
	if err != nil {
		return err
	}

	theme := tui.DetectTheme(firstNonEmpty(themeOverride, settings.Theme))
	app := tui.NewApp(theme, settings, runner.New(newLogger()), history, appVersion)

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}

	// The log buffer dies with the program; the command history does not.
	if err := history.Save(); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
