package cmd

import (
	"github.com/spf13/cobra"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete the venv directory",
	RunE:  runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "skip the confirmation prompt")
}

func runRemove(cmd *cobra.Command, args []string) error {
	cli, err := newCLIContext()
	if err != nil {
		return err
	}

	if !cli.Env.Exists() {
		cli.UI.Warning("No environment at " + cli.Env.Root)
		return nil
	}

	if !removeYes {
		confirmed, err := cli.UI.PromptYesNo("Delete "+cli.Env.Root+"?", false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.UI.Info("Remove cancelled")
			return nil
		}
	}

	if err := cli.Env.Remove(); err != nil {
		return err
	}
	cli.UI.Success("Environment removed")
	return nil
}
