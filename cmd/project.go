package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venvdesk/venvdesk/config"
	"github.com/venvdesk/venvdesk/runner"
)

var projectsFile string

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run predefined command projects",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the projects defined in the projects file",
	RunE:  runProjectList,
}

var projectRunCmd = &cobra.Command{
	Use:   "run <name> [input values...]",
	Short: "Run one project, pairing values with its declared inputs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProjectRun,
}

var projectBatchCmd = &cobra.Command{
	Use:   "batch <name>...",
	Short: "Run several projects back to back",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProjectBatch,
}

func init() {
	projectCmd.PersistentFlags().StringVar(&projectsFile, "projects", config.DefaultProjectsFile, "projects file path")
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectRunCmd)
	projectCmd.AddCommand(projectBatchCmd)
}

func runProjectList(cmd *cobra.Command, args []string) error {
	cli, err := newCLIContext()
	if err != nil {
		return err
	}

	projects, err := config.LoadProjects(projectsFile)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		cli.UI.Info("No projects defined in " + projectsFile)
		return nil
	}

	for _, p := range projects {
		cli.UI.Raw(fmt.Sprintf("%-20s %s", p.Name, p.Script))
		for _, in := range p.Inputs {
			cli.UI.Raw(fmt.Sprintf("    %-16s %s", in.Switch, in.Label))
		}
	}
	return nil
}

func runProjectRun(cmd *cobra.Command, args []string) error {
	cli, err := newCLIContext()
	if err != nil {
		return err
	}

	projects, err := config.LoadProjects(projectsFile)
	if err != nil {
		return err
	}
	project, ok := config.FindProject(projects, args[0])
	if !ok {
		return fmt.Errorf("no project named %q in %s", args[0], projectsFile)
	}

	name, cmdArgs := project.Command(cli.Settings.PythonInterpreter, args[1:])
	res := cli.Env.Runner.Run(cmd.Context(), runner.Spec{
		Name:      name,
		Args:      cmdArgs,
		ExtraPath: cli.Env.BinPath(),
	})
	runner.Report(cli.Env.Sink, res)
	return nil
}

func runProjectBatch(cmd *cobra.Command, args []string) error {
	cli, err := newCLIContext()
	if err != nil {
		return err
	}

	projects, err := config.LoadProjects(projectsFile)
	if err != nil {
		return err
	}

	specs := make([]runner.Spec, 0, len(args))
	for _, name := range args {
		project, ok := config.FindProject(projects, name)
		if !ok {
			return fmt.Errorf("no project named %q in %s", name, projectsFile)
		}
		bin, cmdArgs := project.Command(cli.Settings.PythonInterpreter, nil)
		specs = append(specs, runner.Spec{
			Name:      bin,
			Args:      cmdArgs,
			ExtraPath: cli.Env.BinPath(),
		})
	}

	runner.Batch(cmd.Context(), cli.Env.Runner, cli.Env.Sink, specs)
	return nil
}
