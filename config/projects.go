package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultProjectsFile is the projects file looked up in the working
// directory.
const DefaultProjectsFile = "projects.json"

// InputDef is one labeled argument of a project command.
type InputDef struct {
	Label  string `json:"label"`
	Switch string `json:"switch"`
}

// Project is a reusable command definition: a script run through the base
// interpreter with switch-labeled inputs and free-form extra arguments.
type Project struct {
	Name      string     `json:"name"`
	Script    string     `json:"script"`
	Inputs    []InputDef `json:"inputs,omitempty"`
	ExtraArgs string     `json:"extra_args,omitempty"`
}

// projectsSchema validates the projects file before it is trusted.
const projectsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["name", "script"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"script": {"type": "string", "minLength": 1},
			"inputs": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["label", "switch"],
					"properties": {
						"label": {"type": "string"},
						"switch": {"type": "string"}
					}
				}
			},
			"extra_args": {"type": "string"}
		}
	}
}`

// LoadProjects reads and validates the projects file. A missing file is an
// empty project list, not an error.
func LoadProjects(path string) ([]Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading projects %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(projectsSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validating projects %s: %w", path, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid projects file %s:\n  %s", path, strings.Join(msgs, "\n  "))
	}

	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parsing projects %s: %w", path, err)
	}
	return projects, nil
}

// SaveProjects writes the project list as indented JSON.
func SaveProjects(path string, projects []Project) error {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding projects: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing projects %s: %w", path, err)
	}
	return nil
}

// FindProject returns the project with the given name.
func FindProject(projects []Project, name string) (Project, bool) {
	for _, p := range projects {
		if p.Name == name {
			return p, true
		}
	}
	return Project{}, false
}

// Command assembles the argv for running the project through the given
// interpreter. values pairs positionally with the project's inputs; missing
// or empty values drop their switch.
func (p Project) Command(python string, values []string) (string, []string) {
	args := []string{p.Script}
	for i, in := range p.Inputs {
		if i >= len(values) || values[i] == "" {
			continue
		}
		args = append(args, in.Switch, values[i])
	}
	if p.ExtraArgs != "" {
		args = append(args, strings.Fields(p.ExtraArgs)...)
	}
	return python, args
}
