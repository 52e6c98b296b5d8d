package history

import (
	"fmt"
	"os"
	"time"
)

// Writer appends history entries with automatic pruning.
type Writer struct {
	// StateDir is the directory containing the history file.
	StateDir string
	// MaxEntries is the maximum number of entries to retain.
	MaxEntries int
	// Now supplies entry timestamps; tests override it.
	Now func() time.Time
}

// NewWriter creates a history writer for stateDir.
func NewWriter(stateDir string, maxEntries int) *Writer {
	return &Writer{
		StateDir:   stateDir,
		MaxEntries: maxEntries,
		Now:        func() time.Time { return time.Now().UTC() },
	}
}

// LogCommand records a successful mutating command. Errors are written to
// stderr and never propagate to the caller.
func (w *Writer) LogCommand(command, project, version, detail string) {
	entry := Entry{
		Timestamp: w.Now(),
		Command:   command,
		Project:   project,
		Version:   version,
		Detail:    detail,
	}
	if err := w.append(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to log history: %v\n", err)
	}
}

// append loads, appends, prunes, and saves.
func (w *Writer) append(entry Entry) error {
	f, err := Load(w.StateDir)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	f.Entries = append(f.Entries, entry)

	if w.MaxEntries > 0 && len(f.Entries) > w.MaxEntries {
		excess := len(f.Entries) - w.MaxEntries
		f.Entries = f.Entries[excess:]
	}

	if err := Save(w.StateDir, f); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}
