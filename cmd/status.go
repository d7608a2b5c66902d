package cmd

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List the packages installed in the venv",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cli, err := newCLIContext()
	if err != nil {
		return err
	}

	cli.Env.Status(cmd.Context())
	return nil
}
