package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadProjects_MissingFile(t *testing.T) {
	projects, err := LoadProjects(filepath.Join(t.TempDir(), "projects.json"))
	if err != nil {
		t.Fatalf("LoadProjects error: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("projects = %v, want empty", projects)
	}
}

func TestLoadProjects_RejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"not an array":   `{"name": "x"}`,
		"missing script": `[{"name": "x"}]`,
		"empty name":     `[{"name": "", "script": "run.py"}]`,
		"bad input":      `[{"name": "x", "script": "run.py", "inputs": [{"label": "in"}]}]`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "projects.json")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadProjects(path); err == nil {
				t.Errorf("LoadProjects accepted %s", content)
			}
		})
	}
}

func TestProjectsSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	want := []Project{
		{
			Name:   "convert",
			Script: "tools/convert.py",
			Inputs: []InputDef{
				{Label: "Input file", Switch: "--in"},
				{Label: "Output file", Switch: "--out"},
			},
			ExtraArgs: "--overwrite",
		},
		{Name: "lint", Script: "tools/lint.py"},
	}

	if err := SaveProjects(path, want); err != nil {
		t.Fatalf("SaveProjects error: %v", err)
	}
	got, err := LoadProjects(path)
	if err != nil {
		t.Fatalf("LoadProjects error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestFindProject(t *testing.T) {
	projects := []Project{{Name: "a", Script: "a.py"}, {Name: "b", Script: "b.py"}}

	if p, ok := FindProject(projects, "b"); !ok || p.Script != "b.py" {
		t.Errorf("FindProject(b) = %+v, %v", p, ok)
	}
	if _, ok := FindProject(projects, "c"); ok {
		t.Error("FindProject(c) = true, want false")
	}
}

func TestProjectCommand(t *testing.T) {
	p := Project{
		Name:   "convert",
		Script: "tools/convert.py",
		Inputs: []InputDef{
			{Label: "Input file", Switch: "--in"},
			{Label: "Output file", Switch: "--out"},
		},
		ExtraArgs: "--overwrite --quiet",
	}

	name, args := p.Command("python3", []string{"a.png", "b.png"})
	if name != "python3" {
		t.Errorf("name = %q, want python3", name)
	}
	want := []string{"tools/convert.py", "--in", "a.png", "--out", "b.png", "--overwrite", "--quiet"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestProjectCommand_EmptyValuesDropSwitch(t *testing.T) {
	p := Project{
		Name:   "convert",
		Script: "tools/convert.py",
		Inputs: []InputDef{
			{Label: "Input file", Switch: "--in"},
			{Label: "Output file", Switch: "--out"},
		},
	}

	_, args := p.Command("python3", []string{"a.png"})
	want := []string{"tools/convert.py", "--in", "a.png"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}
