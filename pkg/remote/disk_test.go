package remote

import (
	"context"
	"testing"
	"time"
)

func TestDiskUpsertListRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewDisk(t.TempDir())

	docs := []Document{
		{"id": "b-task", "title": "second", "archived": false},
		{"id": "a-task", "title": "first", "archived": false},
		{"id": "c-task", "title": "third", "archived": true},
	}
	for _, doc := range docs {
		if err := s.Upsert(ctx, "hanna", Tasks, doc); err != nil {
			t.Fatalf("upsert %s: %v", doc.ID(), err)
		}
	}

	got, err := s.List(ctx, "hanna", Tasks, Query{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 docs, got %d", len(got))
	}
	// Store-assigned order is ascending id.
	for i, want := range []string{"a-task", "b-task", "c-task"} {
		if got[i].ID() != want {
			t.Fatalf("doc %d: got id %q, want %q", i, got[i].ID(), want)
		}
	}

	filtered, err := s.List(ctx, "hanna", Tasks, Query{ExcludeArchived: true})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("archived filter: expected 2 docs, got %d", len(filtered))
	}
}

func TestDiskUpsertMergesFields(t *testing.T) {
	ctx := context.Background()
	s := NewDisk(t.TempDir())

	if err := s.Upsert(ctx, "hanna", Projects, Document{"id": "p1", "name": "Garden", "status": "On Track"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := s.Upsert(ctx, "hanna", Projects, Document{"id": "p1", "status": "At Risk"}); err != nil {
		t.Fatalf("merge upsert: %v", err)
	}

	got, err := s.List(ctx, "hanna", Projects, Query{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 doc, got %d", len(got))
	}
	if got[0]["name"] != "Garden" || got[0]["status"] != "At Risk" {
		t.Fatalf("merge result wrong: %v", got[0])
	}
}

func TestDiskDeleteIsHardAndIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewDisk(t.TempDir())

	if err := s.Upsert(ctx, "hanna", Docs, Document{"id": "d1", "title": "notes"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := s.Delete(ctx, "hanna", Docs, "d1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, "hanna", Docs, "d1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	got, err := s.List(ctx, "hanna", Docs, Query{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %d docs", len(got))
	}
}

func TestDiskUsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewDisk(t.TempDir())

	if err := s.Upsert(ctx, "hanna", Tasks, Document{"id": "t1", "title": "mine"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := s.List(ctx, "someone-else", Tasks, Query{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("cross-user leak: %v", got)
	}
}

func TestDiskSubscribeDeliversChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := NewDisk(t.TempDir())

	ch, err := s.Subscribe(ctx, "hanna", Tasks, Query{ExcludeArchived: true})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	initial := waitForDocs(t, ch)
	if len(initial) != 0 {
		t.Fatalf("expected empty initial snapshot, got %d docs", len(initial))
	}

	// Allow the watcher goroutine to settle before writing.
	time.Sleep(50 * time.Millisecond)

	if err := s.Upsert(ctx, "hanna", Tasks, Document{"id": "t1", "title": "hello", "archived": false}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case docs, ok := <-ch:
			if !ok {
				t.Fatal("subscription closed early")
			}
			if len(docs) == 1 && docs[0].ID() == "t1" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for change snapshot")
		}
	}
}

func TestDiskSubscribeCancelDuringBurst(t *testing.T) {
	s := NewDisk(t.TempDir())

	// Cancel at offsets bracketing the coalescing delay so teardown races
	// a pending or firing delivery. Every iteration must end with the
	// channel closed and the process still standing.
	lags := []time.Duration{
		0,
		60 * time.Millisecond,
		95 * time.Millisecond,
		105 * time.Millisecond,
		140 * time.Millisecond,
	}
	for _, lag := range lags {
		ctx, cancel := context.WithCancel(context.Background())
		ch, err := s.Subscribe(ctx, "hanna", Tasks, Query{})
		if err != nil {
			cancel()
			t.Fatalf("subscribe: %v", err)
		}
		if err := s.Upsert(ctx, "hanna", Tasks, Document{"id": "t1", "title": "ping"}); err != nil {
			cancel()
			t.Fatalf("upsert: %v", err)
		}
		time.Sleep(lag)
		cancel()

		deadline := time.After(2 * time.Second)
		for open := true; open; {
			select {
			case _, ok := <-ch:
				open = ok
			case <-deadline:
				t.Fatalf("lag %v: channel never closed", lag)
			}
		}
	}
}

func waitForDocs(t *testing.T, ch <-chan []Document) []Document {
	t.Helper()
	select {
	case docs, ok := <-ch:
		if !ok {
			t.Fatal("subscription channel closed early")
		}
		return docs
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	return nil
}
