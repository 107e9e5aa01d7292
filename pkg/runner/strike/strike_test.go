package strike

import (
	"context"
	"strings"
	"testing"

	"tableflip.dev/flowstate/pkg/app"
	"tableflip.dev/flowstate/pkg/dates"
	"tableflip.dev/flowstate/pkg/dispatch"
	"tableflip.dev/flowstate/pkg/remote"
	"tableflip.dev/flowstate/pkg/replica"
	"tableflip.dev/flowstate/pkg/syncer"
)

func newService(t *testing.T) (*app.Service, *remote.Memory) {
	t.Helper()
	store := remote.NewMemory()
	rep := replica.New()
	rep.SetIdentity("hanna")
	clock := dates.System{}
	router := dispatch.NewRouter(store, rep, clock)
	return app.New(router, syncer.New(store, rep), rep, clock), store
}

func seedTask(t *testing.T, store *remote.Memory) {
	t.Helper()
	if err := store.Upsert(context.Background(), "hanna", remote.Tasks, remote.Document{"id": "t1", "title": "x"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func taskCount(t *testing.T, store *remote.Memory) int {
	t.Helper()
	docs, err := store.List(context.Background(), "hanna", remote.Tasks, remote.Query{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	return len(docs)
}

func TestStrikeDeclinedKeepsTheItem(t *testing.T) {
	svc, store := newService(t)
	seedTask(t, store)

	s := Strike{ID: "t1", In: strings.NewReader("n\n"), Service: svc}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if taskCount(t, store) != 1 {
		t.Fatal("declined strike still deleted the task")
	}
}

func TestStrikeConfirmedDeletes(t *testing.T) {
	svc, store := newService(t)
	seedTask(t, store)

	s := Strike{ID: "t1", In: strings.NewReader("y\n"), Service: svc}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if taskCount(t, store) != 0 {
		t.Fatal("confirmed strike did not delete the task")
	}
}

func TestStrikeYesSkipsThePrompt(t *testing.T) {
	svc, store := newService(t)
	seedTask(t, store)

	// No reader wired; a prompt would try stdin.
	s := Strike{ID: "t1", Yes: true, In: strings.NewReader(""), Service: svc}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if taskCount(t, store) != 0 {
		t.Fatal("task survived --yes strike")
	}
}

func TestStrikeUnknownKind(t *testing.T) {
	svc, _ := newService(t)
	s := Strike{ID: "t1", Kind: "gizmo", Yes: true, Service: svc}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
