// Package snapshot reads and writes the persisted JSON documents that are
// the sole channel between runs. A snapshot is always replaced wholesale:
// the writer marshals the full document to a temporary file and renames it
// into place, assuming single-writer access for the duration of a run.
package snapshot

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Load reads the previous snapshot into doc. A missing or unreadable file
// is not an error: history degrades to empty and the run proceeds. The
// returned bool reports whether a usable snapshot was found.
func Load(path string, doc any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read previous snapshot", "path", path, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, doc); err != nil {
		slog.Warn("Previous snapshot is corrupt, treating as empty", "path", path, "error", err)
		return false
	}

	return true
}

// Write serializes doc as indented JSON and atomically replaces the file at
// path. This is the run's only fatal failure mode: the caller propagates it.
func Write(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
