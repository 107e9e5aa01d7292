// Package backup reads and writes the portable JSON snapshot of a user's
// data. A backup file is self-contained: restoring one goes through the
// same bulk-import dispatch path as any other mutation.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/flowstate/pkg/item"
	"tableflip.dev/flowstate/pkg/replica"
)

// Version is the backup format version written to every file.
const Version = "1.0"

var (
	ErrVersion    = errors.New("backup: unsupported version")
	ErrIncomplete = errors.New("backup: missing required collection")
)

// File is the on-disk backup document.
type File struct {
	Version     string            `json:"version"`
	ExportedAt  string            `json:"exportedAt"`
	Tasks       []item.Task       `json:"tasks"`
	Projects    []item.Project    `json:"projects"`
	Docs        []item.Doc        `json:"docs"`
	Whiteboards []item.Whiteboard `json:"whiteboards"`
}

// Bundle converts the file into the import shape.
func (f *File) Bundle() replica.Bundle {
	return replica.Bundle{
		Tasks:       f.Tasks,
		Projects:    f.Projects,
		Docs:        f.Docs,
		Whiteboards: f.Whiteboards,
	}
}

// Snapshot captures the replica state as a backup file stamped now.
func Snapshot(state replica.State, now time.Time) *File {
	return &File{
		Version:     Version,
		ExportedAt:  now.UTC().Format(time.RFC3339),
		Tasks:       state.Tasks,
		Projects:    state.Projects,
		Docs:        state.Docs,
		Whiteboards: state.Whiteboards,
	}
}

// Write emits the file as indented JSON.
func Write(w io.Writer, f *File) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("backup: write: %w", err)
	}
	return nil
}

// Read parses and validates a backup file. The version must match and all
// four collections must be present, even if empty; a file missing one is
// rejected rather than silently importing half a dataset.
func Read(r io.Reader) (*File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("backup: read: %w", err)
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("backup: parse: %w", err)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("%w: %q", ErrVersion, f.Version)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("backup: parse: %w", err)
	}
	for _, required := range []string{"tasks", "projects", "docs", "whiteboards"} {
		if _, ok := keys[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrIncomplete, required)
		}
	}
	return &f, nil
}
