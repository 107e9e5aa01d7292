package dispatch

import (
	"context"
	"sync"
	"testing"

	"tableflip.dev/flowstate/pkg/dates"
	"tableflip.dev/flowstate/pkg/item"
	"tableflip.dev/flowstate/pkg/remote"
	"tableflip.dev/flowstate/pkg/replica"
)

// recordingStore wraps a Memory store and remembers every write so tests
// can assert on routing targets and payload stamps.
type recordingStore struct {
	*remote.Memory

	mu      sync.Mutex
	upserts []recordedWrite
	deletes []recordedWrite
}

type recordedWrite struct {
	user       string
	collection remote.Collection
	doc        remote.Document
	id         string
}

func newRecordingStore() *recordingStore {
	return &recordingStore{Memory: remote.NewMemory()}
}

func (s *recordingStore) Upsert(ctx context.Context, user string, c remote.Collection, doc remote.Document) error {
	s.mu.Lock()
	s.upserts = append(s.upserts, recordedWrite{user: user, collection: c, doc: doc})
	s.mu.Unlock()
	return s.Memory.Upsert(ctx, user, c, doc)
}

func (s *recordingStore) Delete(ctx context.Context, user string, c remote.Collection, id string) error {
	s.mu.Lock()
	s.deletes = append(s.deletes, recordedWrite{user: user, collection: c, id: id})
	s.mu.Unlock()
	return s.Memory.Delete(ctx, user, c, id)
}

func (s *recordingStore) writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.upserts) + len(s.deletes)
}

func newTestRouter(t *testing.T) (*Router, *recordingStore, *replica.Store) {
	t.Helper()
	store := newRecordingStore()
	rep := replica.New()
	rep.SetIdentity("hanna")
	day, err := dates.Parse("2024-06-03")
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}
	r := NewRouter(store, rep, dates.Fixed{Day: day})
	next := 0
	r.NewID = func() string {
		next++
		return map[int]string{1: "id-1", 2: "id-2", 3: "id-3", 4: "id-4"}[next]
	}
	return r, store, rep
}

func TestDispatchWithoutIdentityIsSilent(t *testing.T) {
	store := newRecordingStore()
	rep := replica.New() // no identity set
	r := NewRouter(store, rep, dates.Fixed{})

	intents := []Intent{
		NewAddTask(item.Task{Title: "x"}),
		NewDeleteProject("p1"),
		NewImport(replica.Bundle{Tasks: []item.Task{{ID: "t1"}}}),
	}
	for _, in := range intents {
		if err := r.Dispatch(context.Background(), in); err != nil {
			t.Fatalf("dispatch %s without identity: %v", in.Kind, err)
		}
	}
	if store.writes() != 0 {
		t.Fatalf("expected zero writes without identity, got %d", store.writes())
	}
}

func TestDispatchUnknownKindIsSilent(t *testing.T) {
	r, store, _ := newTestRouter(t)
	if err := r.Dispatch(context.Background(), Intent{Kind: "FROBNICATE_TASK"}); err != nil {
		t.Fatalf("unknown kind: %v", err)
	}
	if store.writes() != 0 {
		t.Fatalf("unknown kind issued writes: %d", store.writes())
	}
}

func TestRouteTableTargetsEveryCollection(t *testing.T) {
	cases := []struct {
		kind Kind
		want remote.Collection
	}{
		{AddTask, remote.Tasks},
		{UpdateTask, remote.Tasks},
		{DeleteTask, remote.Tasks},
		{RestoreTask, remote.Tasks},
		{ArchiveTask, remote.Tasks},
		{AddProject, remote.Projects},
		{UpdateProject, remote.Projects},
		{DeleteProject, remote.Projects},
		{TouchProject, remote.Projects},
		{AddDoc, remote.Docs},
		{UpdateDoc, remote.Docs},
		{DeleteDoc, remote.Docs},
		{AddWhiteboard, remote.Whiteboards},
		{UpdateWhiteboard, remote.Whiteboards},
		{DeleteWhiteboard, remote.Whiteboards},
	}
	for _, c := range cases {
		got, ok := Target(c.kind)
		if !ok {
			t.Fatalf("%s missing from route table", c.kind)
		}
		if got != c.want {
			t.Fatalf("%s targets %q, want %q", c.kind, got, c.want)
		}
	}
	if _, ok := Target("NOT_A_KIND"); ok {
		t.Fatal("unknown kind should not resolve")
	}
}

func TestAddTaskStampsDefaults(t *testing.T) {
	r, store, _ := newTestRouter(t)
	if err := r.Dispatch(context.Background(), NewAddTask(item.Task{Title: "water plants"})); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if len(store.upserts) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(store.upserts))
	}
	doc := store.upserts[0].doc
	if store.upserts[0].collection != remote.Tasks {
		t.Fatalf("wrong collection: %s", store.upserts[0].collection)
	}
	if doc.ID() != "id-1" {
		t.Fatalf("id not generated before write: %q", doc.ID())
	}
	if doc["status"] != string(item.StatusNotStarted) {
		t.Fatalf("status default: %v", doc["status"])
	}
	if archived, _ := doc["archived"].(bool); archived {
		t.Fatal("new task must not be archived")
	}
	if doc["lastInteracted"] != "2024-06-03" {
		t.Fatalf("lastInteracted stamp: %v", doc["lastInteracted"])
	}
}

func TestUpdateTaskRefreshesLastInteracted(t *testing.T) {
	r, store, _ := newTestRouter(t)
	task := item.Task{ID: "t1", Title: "x", Status: item.StatusInProgress, LastInteracted: "2024-01-01"}
	if err := r.Dispatch(context.Background(), NewUpdateTask(task)); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	doc := store.upserts[0].doc
	if doc["lastInteracted"] != "2024-06-03" {
		t.Fatalf("lastInteracted not refreshed: %v", doc["lastInteracted"])
	}
}

func TestArchiveAndRestoreFlipOnlyArchived(t *testing.T) {
	r, store, _ := newTestRouter(t)
	if err := r.Dispatch(context.Background(), NewArchiveTask("t1")); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if err := r.Dispatch(context.Background(), NewRestoreTask("t1")); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if len(store.upserts) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(store.upserts))
	}
	for i, wantArchived := range []bool{true, false} {
		doc := store.upserts[i].doc
		if len(doc) != 2 {
			t.Fatalf("archive/restore must write only id+archived, got %v", doc)
		}
		if doc.ID() != "t1" {
			t.Fatalf("wrong id: %v", doc)
		}
		if archived, _ := doc["archived"].(bool); archived != wantArchived {
			t.Fatalf("write %d: archived=%v, want %v", i, archived, wantArchived)
		}
	}
}

func TestDeleteTaskIsHardRemove(t *testing.T) {
	r, store, _ := newTestRouter(t)
	ctx := context.Background()
	if err := r.Dispatch(ctx, NewAddTask(item.Task{ID: "t1", Title: "x"})); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := r.Dispatch(ctx, NewDeleteTask("t1")); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.deletes) != 1 || store.deletes[0].collection != remote.Tasks || store.deletes[0].id != "t1" {
		t.Fatalf("unexpected deletes: %+v", store.deletes)
	}
	docs, err := store.List(ctx, "hanna", remote.Tasks, remote.Query{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("task still present after delete: %v", docs)
	}
}

func TestTouchProjectReupsertsWithFreshStamp(t *testing.T) {
	r, store, rep := newTestRouter(t)
	if err := rep.ReplaceCollection(remote.Projects, []remote.Document{
		{"id": "p1", "name": "Garden", "status": "On Track", "statusNote": "fine", "lastInteracted": "2024-01-01"},
	}); err != nil {
		t.Fatalf("seed replica: %v", err)
	}

	if err := r.Dispatch(context.Background(), NewTouchProject("p1")); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if len(store.upserts) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(store.upserts))
	}
	doc := store.upserts[0].doc
	if doc["lastInteracted"] != "2024-06-03" {
		t.Fatalf("stamp not refreshed: %v", doc["lastInteracted"])
	}
	if doc["name"] != "Garden" || doc["statusNote"] != "fine" {
		t.Fatalf("touch changed other fields: %v", doc)
	}

	// Touching an unknown project is a no-op.
	if err := r.Dispatch(context.Background(), NewTouchProject("missing")); err != nil {
		t.Fatalf("touch missing: %v", err)
	}
	if len(store.upserts) != 1 {
		t.Fatal("touch of unknown project issued a write")
	}
}

func TestImportAppliesOptimisticallyAndWritesEachItem(t *testing.T) {
	r, store, rep := newTestRouter(t)
	bundle := replica.Bundle{
		Tasks: []item.Task{
			{ID: "t1", Title: "one", Status: item.StatusNotStarted},
			{ID: "t2", Title: "two", Status: item.StatusNotStarted},
			{ID: "t3", Title: "three", Status: item.StatusNotStarted},
		},
	}
	if err := r.Dispatch(context.Background(), NewImport(bundle)); err != nil {
		t.Fatalf("import: %v", err)
	}

	// Replica grew immediately, before any remote echo.
	if got := len(rep.State().Tasks); got != 3 {
		t.Fatalf("replica tasks after import: got %d, want 3", got)
	}
	// Exactly one upsert per contained item.
	if len(store.upserts) != 3 {
		t.Fatalf("expected 3 upserts, got %d", len(store.upserts))
	}
	for _, w := range store.upserts {
		if w.collection != remote.Tasks {
			t.Fatalf("import wrote to %s", w.collection)
		}
	}
}

func TestGenericNounsRouteToTheirCollections(t *testing.T) {
	r, store, _ := newTestRouter(t)
	ctx := context.Background()

	if err := r.Dispatch(ctx, NewAddDoc(item.Doc{Title: "meeting notes"})); err != nil {
		t.Fatalf("add doc: %v", err)
	}
	if err := r.Dispatch(ctx, NewAddWhiteboard(item.Whiteboard{Name: "sketch"})); err != nil {
		t.Fatalf("add whiteboard: %v", err)
	}
	if err := r.Dispatch(ctx, NewAddProject(item.Project{Name: "Garden", Status: item.ProjectOnTrack})); err != nil {
		t.Fatalf("add project: %v", err)
	}

	wantCollections := []remote.Collection{remote.Docs, remote.Whiteboards, remote.Projects}
	if len(store.upserts) != len(wantCollections) {
		t.Fatalf("expected %d upserts, got %d", len(wantCollections), len(store.upserts))
	}
	for i, want := range wantCollections {
		if store.upserts[i].collection != want {
			t.Fatalf("write %d routed to %s, want %s", i, store.upserts[i].collection, want)
		}
		if store.upserts[i].doc["lastUpdated"] != "2024-06-03" {
			t.Fatalf("write %d missing lastUpdated stamp: %v", i, store.upserts[i].doc)
		}
		if store.upserts[i].doc.ID() == "" {
			t.Fatalf("write %d missing generated id", i)
		}
	}
}
