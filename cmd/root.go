// Package cmd implements the venvdesk CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/venvdesk/venvdesk/config"
	"github.com/venvdesk/venvdesk/internal/ui"
	"github.com/venvdesk/venvdesk/runner"
	"github.com/venvdesk/venvdesk/venv"
)

var (
	cfgFile       string
	verbose       bool
	themeOverride string

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "venvdesk",
	Short: "venvdesk — a terminal desk for Python virtual environments",
	Long: "Venvdesk wraps OS package managers, python -m venv, and pip-tools behind a\n" +
		"two-tab terminal interface. Run it without arguments for the interactive\n" +
		"desk, or use the subcommands for scripting.",
	RunE: runRun,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultSettingsFile, "settings file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "TUI color theme: dark, light, or auto")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(projectCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("venvdesk %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the debug logger; silent unless --verbose.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// cliContext bundles what every non-interactive command needs.
type cliContext struct {
	Settings config.Settings
	UI       *ui.UI
	Env      *venv.Env
}

// newCLIContext loads the settings and wires a venv handle whose sink
// relays child output to the terminal unmodified.
func newCLIContext() (*cliContext, error) {
	settings, err := config.LoadSettings(cfgFile)
	if err != nil {
		return nil, err
	}

	u := ui.New()
	run := runner.New(newLogger())
	env := venv.New(settings.VenvName, settings.PythonInterpreter, run, runner.SinkFunc(u.Raw))

	return &cliContext{Settings: settings, UI: u, Env: env}, nil
}
