// Package config loads and persists venvdesk's settings, command projects,
// and shell history.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is the settings file looked up in the working
// directory when --config is not given.
const DefaultSettingsFile = "venvdesk.yaml"

// Settings is the persistent configuration. Zero values are filled in from
// Default on load, so a partial file is fine and a missing file yields the
// defaults.
type Settings struct {
	// PythonInterpreter is the base interpreter used to create the
	// environment (name or absolute path).
	PythonInterpreter string `yaml:"python_interpreter"`
	// PythonVersion is the version requested from the OS package manager.
	PythonVersion string `yaml:"python_version"`
	// PipToolsVersion pins pip-tools inside the environment; empty means
	// latest.
	PipToolsVersion string `yaml:"pip_tools_version"`
	// RequirementsFile is the pip-tools input file.
	RequirementsFile string `yaml:"requirements_file"`
	// VenvName is the environment directory.
	VenvName string `yaml:"venv_name"`
	// CompileRetries is how often pip-compile is re-run after a failure.
	CompileRetries int `yaml:"compile_retries"`
	// Theme selects the TUI color theme: dark, light, or auto.
	Theme string `yaml:"theme,omitempty"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		PythonInterpreter: defaultPythonInterpreter(),
		PythonVersion:     "3.11",
		PipToolsVersion:   "7.4.1",
		RequirementsFile:  "requirements.in",
		VenvName:          "venv_running",
		CompileRetries:    1,
	}
}

// defaultPythonInterpreter picks the conventional interpreter name for the
// host platform.
func defaultPythonInterpreter() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

// LoadSettings reads the settings file at path. A missing file returns the
// defaults; a present but malformed file is an error.
func LoadSettings(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	s.fillDefaults()
	return s, nil
}

// Save writes the settings as YAML.
func (s Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	return nil
}

func (s *Settings) fillDefaults() {
	def := Default()
	if s.PythonInterpreter == "" {
		s.PythonInterpreter = def.PythonInterpreter
	}
	if s.PythonVersion == "" {
		s.PythonVersion = def.PythonVersion
	}
	if s.RequirementsFile == "" {
		s.RequirementsFile = def.RequirementsFile
	}
	if s.VenvName == "" {
		s.VenvName = def.VenvName
	}
	if s.CompileRetries < 1 {
		s.CompileRetries = def.CompileRetries
	}
}
