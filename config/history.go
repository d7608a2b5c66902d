package config

import (
	"fmt"
	"os"
	"strings"
)

// DefaultHistoryFile stores recent shell commands, newest first.
const DefaultHistoryFile = ".venvdesk_history"

// maxHistoryEntries caps the history file.
const maxHistoryEntries = 100

// History is the recent-command list surfaced in the terminal tab.
type History struct {
	path    string
	entries []string
}

// LoadHistory reads the history file at path. A missing file is an empty
// history.
func LoadHistory(path string) (*History, error) {
	h := &History{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return nil, fmt.Errorf("reading history %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			h.entries = append(h.entries, line)
		}
	}
	if len(h.entries) > maxHistoryEntries {
		h.entries = h.entries[:maxHistoryEntries]
	}
	return h, nil
}

// Entries returns the commands, newest first.
func (h *History) Entries() []string { return h.entries }

// Add records a command at the front, dropping an earlier duplicate and
// trimming to the cap. Blank commands are ignored.
func (h *History) Add(cmdline string) {
	cmdline = strings.TrimSpace(cmdline)
	if cmdline == "" {
		return
	}

	kept := make([]string, 0, len(h.entries)+1)
	kept = append(kept, cmdline)
	for _, e := range h.entries {
		if e != cmdline {
			kept = append(kept, e)
		}
	}
	if len(kept) > maxHistoryEntries {
		kept = kept[:maxHistoryEntries]
	}
	h.entries = kept
}

// Save writes the history back to its file.
func (h *History) Save() error {
	var b strings.Builder
	for _, e := range h.entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(h.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing history %s: %w", h.path, err)
	}
	return nil
}
