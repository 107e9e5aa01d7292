package replica

import (
	"testing"

	"tableflip.dev/flowstate/pkg/item"
	"tableflip.dev/flowstate/pkg/remote"
)

func TestSetIdentityKeepsCollections(t *testing.T) {
	s := New()
	if err := s.ReplaceCollection(remote.Tasks, []remote.Document{
		{"id": "t1", "title": "keep me", "status": "Not Started"},
	}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	s.SetIdentity("hanna")
	state := s.State()
	if state.Identity != "hanna" {
		t.Fatalf("identity: got %q", state.Identity)
	}
	if len(state.Tasks) != 1 {
		t.Fatalf("identity change cleared collections: %d tasks", len(state.Tasks))
	}

	s.SetIdentity("")
	if got := s.Identity(); got != "" {
		t.Fatalf("sign-out identity: got %q", got)
	}
	if len(s.State().Tasks) != 1 {
		t.Fatal("sign-out cleared collections; the listener owns repopulation")
	}
}

func TestReplaceCollectionIsWholesale(t *testing.T) {
	s := New()
	first := []remote.Document{
		{"id": "t1", "title": "one", "status": "Not Started"},
		{"id": "t2", "title": "two", "status": "In Progress"},
	}
	if err := s.ReplaceCollection(remote.Tasks, first); err != nil {
		t.Fatalf("replace: %v", err)
	}

	second := []remote.Document{
		{"id": "t3", "title": "three", "status": "Blocked"},
	}
	if err := s.ReplaceCollection(remote.Tasks, second); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	tasks := s.State().Tasks
	if len(tasks) != 1 {
		t.Fatalf("replacement was not wholesale: %d tasks", len(tasks))
	}
	if tasks[0].ID != "t3" || tasks[0].Status != item.StatusBlocked {
		t.Fatalf("unexpected task: %+v", tasks[0])
	}
}

func TestReplaceCollectionDecodesFields(t *testing.T) {
	s := New()
	docs := []remote.Document{
		{
			"id": "t1", "title": "deep", "status": "In Progress",
			"dueDate": "2024-06-03", "recurrence": "Weekly",
			"ice":     map[string]any{"impact": 4.0, "confidence": 3.0, "ease": 2.0},
			"history": []any{map[string]any{"date": "2024-06-01", "time": "09:30", "changes": []any{"Task Created"}}},
		},
	}
	if err := s.ReplaceCollection(remote.Tasks, docs); err != nil {
		t.Fatalf("replace: %v", err)
	}
	task := s.State().Tasks[0]
	if task.Recurrence != item.RecurrenceWeekly {
		t.Fatalf("recurrence: got %q", task.Recurrence)
	}
	if task.ICE == nil || task.ICE.Score() != 24 {
		t.Fatalf("ice: got %+v", task.ICE)
	}
	if len(task.History) != 1 || task.History[0].Changes[0] != "Task Created" {
		t.Fatalf("history: got %+v", task.History)
	}
}

func TestReplaceUnknownCollection(t *testing.T) {
	s := New()
	if err := s.ReplaceCollection(remote.Collection("widgets"), nil); err == nil {
		t.Fatal("expected error for unknown collection")
	}
}

func TestImportMergesByID(t *testing.T) {
	s := New()
	if err := s.ReplaceCollection(remote.Tasks, []remote.Document{
		{"id": "t1", "title": "original", "status": "Not Started"},
		{"id": "t2", "title": "untouched", "status": "Done"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s.Import(Bundle{
		Tasks: []item.Task{
			{ID: "t1", Title: "overwritten", Status: item.StatusInProgress},
			{ID: "t9", Title: "brand new", Status: item.StatusNotStarted},
		},
	})

	tasks := s.State().Tasks
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks after import, got %d", len(tasks))
	}
	if tasks[0].Title != "overwritten" {
		t.Fatalf("import did not overwrite by id: %+v", tasks[0])
	}
	if tasks[1].Title != "untouched" {
		t.Fatalf("import touched an unrelated record: %+v", tasks[1])
	}
	if tasks[2].ID != "t9" {
		t.Fatalf("imported task not appended: %+v", tasks[2])
	}
	if len(s.State().Projects) != 0 {
		t.Fatal("absent bundle collection must stay untouched")
	}
}
