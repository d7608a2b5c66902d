package venv

import (
	"context"
	"strings"
	"testing"

	"github.com/venvdesk/venvdesk/runner"
)

func TestInstallOSDeps_Linux(t *testing.T) {
	mock := runner.NewMockRunner()
	sink := &runner.BufferSink{}

	installOSDepsFor(context.Background(), mock, sink, "linux", "3.11")

	lines := mock.CallLines()
	if len(lines) != 2 {
		t.Fatalf("calls = %v, want apt-get update then install", lines)
	}
	if lines[0] != "sudo apt-get update" {
		t.Errorf("first call = %q", lines[0])
	}
	if lines[1] != "sudo apt-get install -y python3.11 python3-venv" {
		t.Errorf("second call = %q", lines[1])
	}
}

func TestInstallOSDeps_Darwin(t *testing.T) {
	mock := runner.NewMockRunner()
	sink := &runner.BufferSink{}

	installOSDepsFor(context.Background(), mock, sink, "darwin", "3.11")

	lines := mock.CallLines()
	if len(lines) != 1 || lines[0] != "brew install python@3.11" {
		t.Errorf("calls = %v, want [brew install python@3.11]", lines)
	}
}

func TestInstallOSDeps_WindowsSpawnsNothing(t *testing.T) {
	mock := runner.NewMockRunner()
	sink := &runner.BufferSink{}

	installOSDepsFor(context.Background(), mock, sink, "windows", "3.11")

	if len(mock.Calls) != 0 {
		t.Errorf("calls = %v, want none", mock.CallLines())
	}
	if !strings.Contains(sink.String(), "Ensure Python is installed manually on Windows.") {
		t.Errorf("sink = %q, want manual-install notice", sink.String())
	}
}

func TestInstallOSDeps_UnsupportedOS(t *testing.T) {
	mock := runner.NewMockRunner()
	sink := &runner.BufferSink{}

	installOSDepsFor(context.Background(), mock, sink, "plan9", "3.11")

	if len(mock.Calls) != 0 {
		t.Errorf("calls = %v, want none", mock.CallLines())
	}
	if !strings.Contains(sink.String(), "Unsupported OS.") {
		t.Errorf("sink = %q, want unsupported notice", sink.String())
	}
}
