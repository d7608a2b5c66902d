package venv

import (
	"context"
	"fmt"

	"github.com/venvdesk/venvdesk/runner"
)

// UpgradePip upgrades pip inside the environment.
func (e *Env) UpgradePip(ctx context.Context) {
	res := e.Runner.Run(ctx, runner.Spec{
		Name: e.PipPath(),
		Args: []string{"install", "--upgrade", "pip"},
	})
	runner.Report(e.Sink, res)
}

// InstallPipTools installs pip-tools, pinned when version is non-empty.
func (e *Env) InstallPipTools(ctx context.Context, version string) {
	pkg := "pip-tools"
	if version != "" {
		pkg = "pip-tools==" + version
	}
	res := e.Runner.Run(ctx, runner.Spec{
		Name: e.PipPath(),
		Args: []string{"install", pkg},
	})
	runner.Report(e.Sink, res)
}

// Compile runs pip-compile on the requirements file, retrying until it
// exits zero or the attempts are used up. Returns true when a run
// succeeded.
func (e *Env) Compile(ctx context.Context, requirementsFile string, retries int) bool {
	if retries < 1 {
		retries = 1
	}
	for attempt := 1; attempt <= retries; attempt++ {
		if attempt > 1 {
			e.Sink.Append(fmt.Sprintf("pip-compile attempt %d/%d...", attempt, retries))
		}
		res := e.Runner.Run(ctx, runner.Spec{
			Name: e.ToolPath("pip-compile"),
			Args: []string{requirementsFile},
		})
		runner.Report(e.Sink, res)
		if res.Err == nil && res.ExitCode == 0 {
			return true
		}
	}
	return false
}

// Sync runs pip-sync inside the environment.
func (e *Env) Sync(ctx context.Context) {
	res := e.Runner.Run(ctx, runner.Spec{Name: e.ToolPath("pip-sync")})
	runner.Report(e.Sink, res)
}
