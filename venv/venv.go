// Package venv manages a single Python virtual environment: creating it,
// resolving the executables inside it, and driving pip and pip-tools
// through the command runner. All user-visible feedback flows through the
// injected sink.
package venv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/venvdesk/venvdesk/runner"
)

// DefaultName is the directory the environment lives in when the settings
// file does not override it.
const DefaultName = "venv_running"

// Env is one virtual environment rooted at a directory. Operations resolve
// executables relative to the environment's binary subdirectory and report
// their output into the sink; none of them return child-process failures as
// errors.
type Env struct {
	Root   string
	Python string

	Runner runner.Runner
	Sink   runner.Sink
}

// New creates an Env rooted at root, created with the given base
// interpreter.
func New(root, python string, r runner.Runner, sink runner.Sink) *Env {
	return &Env{Root: root, Python: python, Runner: r, Sink: sink}
}

// BinDir returns the name of the binary subdirectory inside a virtual
// environment on the host platform.
func BinDir() string {
	return binDirFor(runtime.GOOS)
}

func binDirFor(goos string) string {
	if goos == "windows" {
		return "Scripts"
	}
	return "bin"
}

// BinPath returns the environment's binary directory.
func (e *Env) BinPath() string {
	return filepath.Join(e.Root, BinDir())
}

// ActivatePath returns the path of the activation script.
func (e *Env) ActivatePath() string {
	return filepath.Join(e.BinPath(), "activate")
}

// ToolPath returns the path of an executable installed in the environment.
// No extension is appended; exec resolves it per platform.
func (e *Env) ToolPath(name string) string {
	return filepath.Join(e.BinPath(), name)
}

// PipPath returns the environment's pip executable path.
func (e *Env) PipPath() string { return e.ToolPath("pip") }

// Exists reports whether the environment directory has been created.
func (e *Env) Exists() bool {
	info, err := os.Stat(e.Root)
	return err == nil && info.IsDir()
}

// Create runs `<python> -m venv <root>` and reports the output.
func (e *Env) Create(ctx context.Context) {
	res := e.Runner.Run(ctx, runner.Spec{Name: e.Python, Args: []string{"-m", "venv", e.Root}})
	runner.Report(e.Sink, res)
}

// Remove deletes the environment directory.
func (e *Env) Remove() error {
	if !e.Exists() {
		return fmt.Errorf("no environment at %s", e.Root)
	}
	return os.RemoveAll(e.Root)
}

// Status reports which environment files are present and then the installed
// package list.
func (e *Env) Status(ctx context.Context) {
	if !e.Exists() {
		e.Sink.Append(fmt.Sprintf("No virtual environment at %s. Run setup first.", e.Root))
		return
	}
	e.Sink.Append(fmt.Sprintf("Virtual environment: %s", e.Root))
	e.ListPackages(ctx)
}

// ListPackages runs `pip list` inside the environment and reports the
// output.
func (e *Env) ListPackages(ctx context.Context) {
	res := e.Runner.Run(ctx, runner.Spec{Name: e.PipPath(), Args: []string{"list"}})
	runner.Report(e.Sink, res)
}

// Shell executes a raw command line through the platform shell with the
// environment's binary directory prepended to PATH. The line is passed
// through verbatim; venvdesk trusts its operator. An empty or
// whitespace-only line logs a notice and spawns nothing.
func (e *Env) Shell(ctx context.Context, cmdline string) {
	if strings.TrimSpace(cmdline) == "" {
		e.Sink.Append("No command entered.")
		return
	}

	e.Sink.Append(fmt.Sprintf("Executing in venv: %s", cmdline))

	binPath := e.BinPath()
	if abs, err := filepath.Abs(binPath); err == nil {
		binPath = abs
	}
	res := e.Runner.Run(ctx, runner.Spec{Shell: cmdline, ExtraPath: binPath})
	runner.Report(e.Sink, res)
}

// Setup provisions the environment end to end: OS-level dependencies, venv
// creation, pip upgrade, pip-tools install. Mirrors the one-button setup
// flow of the menu tab.
func (e *Env) Setup(ctx context.Context, pythonVersion, pipToolsVersion string) {
	e.Sink.Append("Checking OS dependencies...")
	InstallOSDeps(ctx, e.Runner, e.Sink, pythonVersion)

	e.Sink.Append("Creating virtual environment...")
	e.Create(ctx)
	e.Sink.Append(fmt.Sprintf("Virtual environment created at %s", e.ActivatePath()))

	e.Sink.Append("Upgrading pip...")
	e.UpgradePip(ctx)

	e.Sink.Append("Installing pip-tools...")
	e.InstallPipTools(ctx, pipToolsVersion)
	e.Sink.Append("pip-tools installed.")
}
