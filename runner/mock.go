package runner

import (
	"context"
	"strings"
)

// MockRunner implements Runner with canned results keyed by the command
// line. Calls are recorded so tests can assert what would have been spawned.
type MockRunner struct {
	// Results maps a command-line prefix to the result to return.
	Results map[string]Result
	// Default is returned when no prefix matches.
	Default Result

	Calls []Spec
}

// NewMockRunner creates a MockRunner with no canned results.
func NewMockRunner() *MockRunner {
	return &MockRunner{Results: map[string]Result{}}
}

// Run records the spec and returns the first canned result whose key is a
// prefix of the rendered command line.
func (m *MockRunner) Run(_ context.Context, spec Spec) Result {
	m.Calls = append(m.Calls, spec)

	line := spec.Shell
	if line == "" {
		line = strings.Join(append([]string{spec.Name}, spec.Args...), " ")
	}
	for prefix, res := range m.Results {
		if strings.HasPrefix(line, prefix) {
			return res
		}
	}
	return m.Default
}

// CallLines renders each recorded call as a single command line.
func (m *MockRunner) CallLines() []string {
	lines := make([]string, 0, len(m.Calls))
	for _, spec := range m.Calls {
		if spec.Shell != "" {
			lines = append(lines, spec.Shell)
			continue
		}
		lines = append(lines, strings.Join(append([]string{spec.Name}, spec.Args...), " "))
	}
	return lines
}
