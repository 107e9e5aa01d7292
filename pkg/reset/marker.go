package reset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"tableflip.dev/flowstate/pkg/dates"
)

// Marker remembers the last day the morning reset ran, so the reset fires
// at most once per calendar day.
type Marker interface {
	// Last returns the recorded day, or the zero date when none exists.
	Last() (dates.Date, error)
	Set(d dates.Date) error
}

// FileMarker keeps the day in a small file next to the data directory.
type FileMarker struct {
	Path string
}

func (m *FileMarker) Last() (dates.Date, error) {
	raw, err := os.ReadFile(m.Path)
	if errors.Is(err, os.ErrNotExist) {
		return dates.Date{}, nil
	}
	if err != nil {
		return dates.Date{}, err
	}
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return dates.Date{}, nil
	}
	return dates.Parse(s)
}

func (m *FileMarker) Set(d dates.Date) error {
	if err := os.MkdirAll(filepath.Dir(m.Path), 0777); err != nil {
		return err
	}
	return os.WriteFile(m.Path, []byte(d.String()+"\n"), 0666)
}

// MemoryMarker is an in-process marker for tests.
type MemoryMarker struct {
	mu  sync.Mutex
	day dates.Date
}

func (m *MemoryMarker) Last() (dates.Date, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.day, nil
}

func (m *MemoryMarker) Set(d dates.Date) error {
	m.mu.Lock()
	m.day = d
	m.mu.Unlock()
	return nil
}
