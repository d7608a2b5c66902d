package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadHistory_MissingFile(t *testing.T) {
	h, err := LoadHistory(filepath.Join(t.TempDir(), ".venvdesk_history"))
	if err != nil {
		t.Fatalf("LoadHistory error: %v", err)
	}
	if len(h.Entries()) != 0 {
		t.Errorf("entries = %v, want empty", h.Entries())
	}
}

func TestHistoryAdd_NewestFirstAndDeduplicated(t *testing.T) {
	h, _ := LoadHistory(filepath.Join(t.TempDir(), ".venvdesk_history"))

	h.Add("pip list")
	h.Add("pip-compile requirements.in")
	h.Add("pip list")

	want := []string{"pip list", "pip-compile requirements.in"}
	if !reflect.DeepEqual(h.Entries(), want) {
		t.Errorf("entries = %v, want %v", h.Entries(), want)
	}
}

func TestHistoryAdd_IgnoresBlank(t *testing.T) {
	h, _ := LoadHistory(filepath.Join(t.TempDir(), ".venvdesk_history"))
	h.Add("   ")
	if len(h.Entries()) != 0 {
		t.Errorf("entries = %v, want empty", h.Entries())
	}
}

func TestHistoryCap(t *testing.T) {
	h, _ := LoadHistory(filepath.Join(t.TempDir(), ".venvdesk_history"))
	for i := 0; i < maxHistoryEntries+20; i++ {
		h.Add(fmt.Sprintf("echo %d", i))
	}
	if len(h.Entries()) != maxHistoryEntries {
		t.Errorf("len = %d, want %d", len(h.Entries()), maxHistoryEntries)
	}
	if h.Entries()[0] != fmt.Sprintf("echo %d", maxHistoryEntries+19) {
		t.Errorf("head = %q, want newest entry", h.Entries()[0])
	}
}

func TestHistorySaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".venvdesk_history")

	h, _ := LoadHistory(path)
	h.Add("pip list")
	h.Add("python --version")
	if err := h.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := LoadHistory(path)
	if err != nil {
		t.Fatalf("LoadHistory error: %v", err)
	}
	if !reflect.DeepEqual(loaded.Entries(), h.Entries()) {
		t.Errorf("entries = %v, want %v", loaded.Entries(), h.Entries())
	}

	data, _ := os.ReadFile(path)
	if string(data) != "python --version\npip list\n" {
		t.Errorf("file = %q", data)
	}
}
