package runner

import "strings"

// Sink is the append-only text surface every operation reports into. The
// terminal tab of the TUI implements it; so do plain writers in CLI mode.
type Sink interface {
	// Append adds text plus a trailing line separator to the surface and
	// scrolls it into view.
	Append(text string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(string)

// Append calls f.
func (f SinkFunc) Append(text string) { f(text) }

// BufferSink records appended lines in order. Used by the TUI to collect an
// action's output before it is flushed into the viewport, and by tests.
type BufferSink struct {
	lines []string
}

// Append records one line.
func (b *BufferSink) Append(text string) {
	b.lines = append(b.lines, text)
}

// Lines returns the recorded lines in append order.
func (b *BufferSink) Lines() []string { return b.lines }

// String joins the recorded lines, each followed by a newline.
func (b *BufferSink) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}

// Report appends a result's captured output to the sink: stdout first, then
// stderr, each as its own line. Empty streams are skipped. Exit codes are
// deliberately not inspected here; a failing child reads exactly like a
// succeeding one.
func Report(sink Sink, res Result) {
	if res.Stdout != "" {
		sink.Append(strings.TrimRight(res.Stdout, "\n"))
	}
	if res.Stderr != "" {
		sink.Append(strings.TrimRight(res.Stderr, "\n"))
	}
}
