// Package history records chlog command invocations in the state directory.
// Logging failures are non-fatal: a changelog command never fails because
// its history entry could not be written.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// historyFileName is the history file inside the state directory.
const historyFileName = "history.json"

// Entry is one recorded mutation.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command"`
	Project   string    `json:"project,omitempty"`
	Version   string    `json:"version,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// File is the persisted history document.
type File struct {
	Entries []Entry `json:"entries"`
}

// Load reads the history file from stateDir. A missing file yields an
// empty history.
func Load(stateDir string) (*File, error) {
	path := filepath.Join(stateDir, historyFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing history file: %w", err)
	}
	return &f, nil
}

// Save writes the history file to stateDir.
func Save(stateDir string, f *File) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	path := filepath.Join(stateDir, historyFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return nil
}

// Clear removes the history file. A missing file is not an error.
func Clear(stateDir string) error {
	path := filepath.Join(stateDir, historyFileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing history file: %w", err)
	}
	return nil
}
