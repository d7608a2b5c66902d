package venv

import (
	"context"
	"fmt"
	"runtime"

	"github.com/venvdesk/venvdesk/runner"
)

// InstallOSDeps installs the OS-level packages Python needs on the host
// platform. On Linux this runs the system package manager under sudo
// without further confirmation; that matches the one-button setup flow.
func InstallOSDeps(ctx context.Context, r runner.Runner, sink runner.Sink, pythonVersion string) {
	installOSDepsFor(ctx, r, sink, runtime.GOOS, pythonVersion)
}

func installOSDepsFor(ctx context.Context, r runner.Runner, sink runner.Sink, goos, pythonVersion string) {
	sink.Append(fmt.Sprintf("Detected OS: %s/%s", goos, runtime.GOARCH))

	switch goos {
	case "linux":
		runner.Report(sink, r.Run(ctx, runner.Spec{
			Name: "sudo", Args: []string{"apt-get", "update"},
		}))
		runner.Report(sink, r.Run(ctx, runner.Spec{
			Name: "sudo",
			Args: []string{"apt-get", "install", "-y", "python" + pythonVersion, "python3-venv"},
		}))
	case "darwin":
		runner.Report(sink, r.Run(ctx, runner.Spec{
			Name: "brew", Args: []string{"install", "python@" + pythonVersion},
		}))
	case "windows":
		sink.Append("Ensure Python is installed manually on Windows.")
	default:
		sink.Append("Unsupported OS.")
	}
}
