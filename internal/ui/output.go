// Package ui provides leveled, colored output for the non-interactive CLI
// commands. The TUI never uses it; its feedback goes through the log sink.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// UI writes leveled messages to a single output stream.
type UI struct {
	output io.Writer

	colorInfo    *color.Color
	colorSuccess *color.Color
	colorWarning *color.Color
	colorError   *color.Color
	colorHeader  *color.Color
}

// New creates a UI writing to stderr, leaving stdout for child-process
// output.
func New() *UI {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a UI with a custom output writer (useful for
// testing).
func NewWithWriter(w io.Writer) *UI {
	return &UI{
		output:       w,
		colorInfo:    color.New(color.FgBlue),
		colorSuccess: color.New(color.FgGreen),
		colorWarning: color.New(color.FgYellow),
		colorError:   color.New(color.FgRed),
		colorHeader:  color.New(color.FgCyan, color.Bold),
	}
}

// Info prints an info message.
func (u *UI) Info(msg string) {
	u.colorInfo.Fprintf(u.output, "[INFO] %s\n", msg)
}

// Infof prints a formatted info message.
func (u *UI) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}

// Success prints a success message.
func (u *UI) Success(msg string) {
	u.colorSuccess.Fprintf(u.output, "[✓] %s\n", msg)
}

// Successf prints a formatted success message.
func (u *UI) Successf(format string, args ...interface{}) {
	u.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (u *UI) Warning(msg string) {
	u.colorWarning.Fprintf(u.output, "[WARNING] %s\n", msg)
}

// Error prints an error message.
func (u *UI) Error(msg string) {
	u.colorError.Fprintf(u.output, "[ERROR] %s\n", msg)
}

// Errorf prints a formatted error message.
func (u *UI) Errorf(format string, args ...interface{}) {
	u.Error(fmt.Sprintf(format, args...))
}

// Header prints a boxed section header.
func (u *UI) Header(title string) {
	border := strings.Repeat("=", 70)
	fmt.Fprintln(u.output)
	u.colorHeader.Fprintln(u.output, border)
	u.colorHeader.Fprintf(u.output, "  %s\n", title)
	u.colorHeader.Fprintln(u.output, border)
	fmt.Fprintln(u.output)
}

// Raw prints a line without any level prefix or color. Child-process output
// is relayed through here, so it must stay untouched.
func (u *UI) Raw(msg string) {
	fmt.Fprintln(u.output, msg)
}
