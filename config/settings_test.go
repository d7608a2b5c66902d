package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := Default()

	if s.PythonVersion != "3.11" {
		t.Errorf("PythonVersion = %q, want 3.11", s.PythonVersion)
	}
	if s.PipToolsVersion != "7.4.1" {
		t.Errorf("PipToolsVersion = %q, want 7.4.1", s.PipToolsVersion)
	}
	if s.RequirementsFile != "requirements.in" {
		t.Errorf("RequirementsFile = %q, want requirements.in", s.RequirementsFile)
	}
	if s.VenvName != "venv_running" {
		t.Errorf("VenvName = %q, want venv_running", s.VenvName)
	}

	wantPython := "python3"
	if runtime.GOOS == "windows" {
		wantPython = "python"
	}
	if s.PythonInterpreter != wantPython {
		t.Errorf("PythonInterpreter = %q, want %q", s.PythonInterpreter, wantPython)
	}
}

func TestLoadSettings_MissingFileYieldsDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "venvdesk.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if s != Default() {
		t.Errorf("settings = %+v, want defaults", s)
	}
}

func TestLoadSettings_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venvdesk.yaml")
	if err := os.WriteFile(path, []byte("venv_name: sandbox\ncompile_retries: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if s.VenvName != "sandbox" {
		t.Errorf("VenvName = %q, want sandbox", s.VenvName)
	}
	if s.CompileRetries != 4 {
		t.Errorf("CompileRetries = %d, want 4", s.CompileRetries)
	}
	if s.RequirementsFile != "requirements.in" {
		t.Errorf("RequirementsFile = %q, want default", s.RequirementsFile)
	}
}

func TestLoadSettings_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venvdesk.yaml")
	if err := os.WriteFile(path, []byte("venv_name: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestSettingsSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venvdesk.yaml")

	want := Default()
	want.VenvName = "envs/demo"
	want.PipToolsVersion = ""
	want.Theme = "light"

	if err := want.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
