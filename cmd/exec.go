package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/venvdesk/venvdesk/config"
)

var execCmd = &cobra.Command{
	Use:   "exec -- <command line>",
	Short: "Run a shell command with the venv's bin directory on PATH",
	Long: "Exec passes the command line verbatim to the platform shell with the\n" +
		"environment's binary directory prepended to PATH. Nothing is sanitized;\n" +
		"the command runs with this process's privileges.",
	Args: cobra.ArbitraryArgs,
	RunE: runExec,
}

func runExec(cmd *cobra.Command, args []string) error {
	cli, err := newCLIContext()
	if err != nil {
		return err
	}

	cmdline := strings.Join(args, " ")
	cli.Env.Shell(cmd.Context(), cmdline)

	if strings.TrimSpace(cmdline) == "" {
		return nil
	}

	history, err := config.LoadHistory(config.DefaultHistoryFile)
	if err != nil {
		return err
	}
	history.Add(cmdline)
	return history.Save()
}
