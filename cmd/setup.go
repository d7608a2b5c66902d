package cmd

import (
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install OS dependencies, create the venv, and install pip-tools",
	RunE:  runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	cli, err := newCLIContext()
	if err != nil {
		return err
	}

	cli.UI.Header("Environment Setup")
	if cli.Env.Exists() {
		cli.UI.Warning("Environment already exists at " + cli.Env.Root + "; continuing anyway")
	}

	cli.Env.Setup(cmd.Context(), cli.Settings.PythonVersion, cli.Settings.PipToolsVersion)

	cli.UI.Successf("Activate with: source %s", cli.Env.ActivatePath())
	return nil
}
