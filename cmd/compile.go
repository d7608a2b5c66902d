package cmd

import (
	"github.com/spf13/cobra"
)

var compileRetries int

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Run pip-compile on the requirements file",
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().IntVar(&compileRetries, "retries", 0, "override the configured retry count")
}

func runCompile(cmd *cobra.Command, args []string) error {
	cli, err := newCLIContext()
	if err != nil {
		return err
	}

	retries := cli.Settings.CompileRetries
	if compileRetries > 0 {
		retries = compileRetries
	}

	cli.UI.Info("Running pip-compile...")
	if !cli.Env.Compile(cmd.Context(), cli.Settings.RequirementsFile, retries) {
		cli.UI.Error("pip-compile did not succeed")
		return nil
	}
	cli.UI.Success("Requirements compiled")
	return nil
}
