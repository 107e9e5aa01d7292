package backup

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/flowstate/pkg/item"
	"tableflip.dev/flowstate/pkg/replica"
)

func TestSnapshotRoundTrip(t *testing.T) {
	state := replica.State{
		Tasks: []item.Task{
			{ID: "t1", Title: "one", Status: item.StatusInProgress, DueDate: "2024-06-03", ICE: &item.ICE{Impact: 4, Confidence: 3, Ease: 2}},
		},
		Projects: []item.Project{
			{ID: "p1", Name: "Garden", Status: item.ProjectOnTrack},
		},
	}
	exported := time.Date(2024, time.June, 3, 18, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := Write(&buf, Snapshot(state, exported)); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := Read(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if f.Version != "1.0" {
		t.Fatalf("version: got %q", f.Version)
	}
	if f.ExportedAt != "2024-06-03T18:30:00Z" {
		t.Fatalf("exportedAt: got %q", f.ExportedAt)
	}
	if len(f.Tasks) != 1 || f.Tasks[0].ICE.Score() != 24 {
		t.Fatalf("tasks: got %+v", f.Tasks)
	}

	b := f.Bundle()
	if len(b.Tasks) != 1 || len(b.Projects) != 1 {
		t.Fatalf("bundle: %+v", b)
	}
}

func TestReadRejectsWrongVersion(t *testing.T) {
	in := `{"version":"2.0","exportedAt":"2024-06-03T00:00:00Z","tasks":[],"projects":[],"docs":[],"whiteboards":[]}`
	if _, err := Read(strings.NewReader(in)); !errors.Is(err, ErrVersion) {
		t.Fatalf("expected ErrVersion, got %v", err)
	}
}

func TestReadRejectsMissingCollections(t *testing.T) {
	cases := []string{
		`{"version":"1.0","exportedAt":"2024-06-03T00:00:00Z","projects":[],"docs":[],"whiteboards":[]}`,
		`{"version":"1.0","exportedAt":"2024-06-03T00:00:00Z","tasks":[],"docs":[],"whiteboards":[]}`,
		`{"version":"1.0","exportedAt":"2024-06-03T00:00:00Z","tasks":[],"projects":[],"whiteboards":[]}`,
		`{"version":"1.0","exportedAt":"2024-06-03T00:00:00Z","tasks":[],"projects":[],"docs":[]}`,
	}
	for _, in := range cases {
		if _, err := Read(strings.NewReader(in)); !errors.Is(err, ErrIncomplete) {
			t.Fatalf("expected ErrIncomplete for %s, got %v", in, err)
		}
	}

	// Present-but-empty collections are fine.
	ok := `{"version":"1.0","exportedAt":"2024-06-03T00:00:00Z","tasks":[],"projects":[],"docs":[],"whiteboards":[]}`
	if _, err := Read(strings.NewReader(ok)); err != nil {
		t.Fatalf("empty collections rejected: %v", err)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	if _, err := Read(strings.NewReader("not json")); err == nil {
		t.Fatal("expected parse error")
	}
}
