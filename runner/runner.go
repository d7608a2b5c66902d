// Package runner spawns and waits on child processes, capturing their
// output as text. It is the only place in venvdesk that touches os/exec.
package runner

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/log"
)

// Spec describes a single child-process invocation. Either Name/Args or
// Shell is set; Shell takes the raw command line verbatim to the platform
// shell. ExtraPath, when non-empty, is prepended to PATH for the child.
type Spec struct {
	Name      string
	Args      []string
	Shell     string
	Dir       string
	ExtraPath string
}

// Result holds the captured output of a finished invocation. Stderr from a
// failing child is surfaced the same way as Stdout; callers that only want
// to display output never need to look at Err.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Runner executes child processes described by a Spec.
type Runner interface {
	Run(ctx context.Context, spec Spec) Result
}

// ExecRunner is the os/exec-backed Runner used outside of tests.
type ExecRunner struct {
	Log *log.Logger
}

// New returns an ExecRunner with an optional debug logger.
func New(logger *log.Logger) *ExecRunner {
	return &ExecRunner{Log: logger}
}

// Run executes the spec and waits for completion. The command line of a
// Shell spec is passed through unmodified; whatever the user typed runs
// with the privileges of this process.
func (r *ExecRunner) Run(ctx context.Context, spec Spec) Result {
	name, args := spec.Name, spec.Args
	if spec.Shell != "" {
		shell, shellArgs := platformShell()
		name = shell
		args = append(shellArgs, spec.Shell)
	}

	if r.Log != nil {
		r.Log.Debug("exec", "name", name, "args", args, "dir", spec.Dir)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = spec.Dir
	if spec.ExtraPath != "" {
		cmd.Env = prependPath(os.Environ(), spec.ExtraPath)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    err,
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	} else if err != nil {
		res.ExitCode = -1
	}

	if r.Log != nil {
		r.Log.Debug("exec done", "name", name, "exit", res.ExitCode)
	}
	return res
}

// platformShell returns the shell and the flag that makes it read a
// command line from its arguments.
func platformShell() (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C"}
	}
	return "sh", []string{"-c"}
}

// prependPath returns env with dir prepended to the PATH entry, adding one
// when none exists.
func prependPath(env []string, dir string) []string {
	out := make([]string, 0, len(env)+1)
	found := false
	for _, kv := range env {
		if len(kv) >= 5 && (kv[:5] == "PATH=" || kv[:5] == "Path=") {
			out = append(out, kv[:5]+dir+string(os.PathListSeparator)+kv[5:])
			found = true
			continue
		}
		out = append(out, kv)
	}
	if !found {
		out = append(out, "PATH="+dir)
	}
	return out
}
