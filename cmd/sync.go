package cmd

import (
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run pip-sync against the lock file",
	RunE:  runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	cli, err := newCLIContext()
	if err != nil {
		return err
	}

	cli.UI.Info("Running pip-sync...")
	cli.Env.Sync(cmd.Context())
	return nil
}
