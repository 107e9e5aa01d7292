// Package replica holds the in-memory mirror of the remote store: the
// authoritative-for-rendering snapshot of every collection plus the signed-in
// identity. Exactly three transitions exist — set identity, replace a whole
// collection, and merge a bulk import. Every other "change" in the system is
// a remote write that comes back through a collection replacement.
package replica

import (
	"fmt"
	"sync"

	"tableflip.dev/flowstate/pkg/item"
	"tableflip.dev/flowstate/pkg/remote"
)

// State is one consistent view of the replica. Collections keep the order
// the store assigned them.
type State struct {
	Identity    string
	Tasks       []item.Task
	Projects    []item.Project
	Docs        []item.Doc
	Whiteboards []item.Whiteboard
}

// Bundle is a partial set of collections, used by bulk import. A nil slice
// means "collection not present in the import".
type Bundle struct {
	Tasks       []item.Task
	Projects    []item.Project
	Docs        []item.Doc
	Whiteboards []item.Whiteboard
}

// Store is the local replica. Safe for concurrent use; the sync listener
// writes snapshots while readers render.
type Store struct {
	mu    sync.RWMutex
	state State
}

func New() *Store {
	return &Store{}
}

// State returns a copy of the current replica. The slices are copied so
// callers can iterate without holding the store's lock.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := State{Identity: s.state.Identity}
	out.Tasks = append(out.Tasks, s.state.Tasks...)
	out.Projects = append(out.Projects, s.state.Projects...)
	out.Docs = append(out.Docs, s.state.Docs...)
	out.Whiteboards = append(out.Whiteboards, s.state.Whiteboards...)
	return out
}

// Identity returns the signed-in user id, or "" when signed out.
func (s *Store) Identity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Identity
}

// SetIdentity swaps the signed-in user. Existing collections are kept; the
// sync listener repopulates them once the new identity's subscriptions
// resolve.
func (s *Store) SetIdentity(user string) {
	s.mu.Lock()
	s.state.Identity = user
	s.mu.Unlock()
}

// ReplaceCollection installs the store's snapshot of one collection
// wholesale. The replica is never patched document by document.
func (s *Store) ReplaceCollection(c remote.Collection, docs []remote.Document) error {
	fields := asMaps(docs)
	switch c {
	case remote.Tasks:
		tasks, err := item.DecodeTasks(fields)
		if err != nil {
			return fmt.Errorf("replica: replace %s: %w", c, err)
		}
		s.mu.Lock()
		s.state.Tasks = tasks
		s.mu.Unlock()
	case remote.Projects:
		projects, err := item.DecodeProjects(fields)
		if err != nil {
			return fmt.Errorf("replica: replace %s: %w", c, err)
		}
		s.mu.Lock()
		s.state.Projects = projects
		s.mu.Unlock()
	case remote.Docs:
		items, err := item.DecodeDocs(fields)
		if err != nil {
			return fmt.Errorf("replica: replace %s: %w", c, err)
		}
		s.mu.Lock()
		s.state.Docs = items
		s.mu.Unlock()
	case remote.Whiteboards:
		boards, err := item.DecodeWhiteboards(fields)
		if err != nil {
			return fmt.Errorf("replica: replace %s: %w", c, err)
		}
		s.mu.Lock()
		s.state.Whiteboards = boards
		s.mu.Unlock()
	default:
		return fmt.Errorf("replica: unknown collection %q", c)
	}
	return nil
}

// Import optimistically merges a bundle into the replica ahead of the
// corresponding remote writes: items overwrite by id, new items append,
// unrelated records are untouched.
func (s *Store) Import(b Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.Tasks != nil {
		s.state.Tasks = mergeTasks(s.state.Tasks, b.Tasks)
	}
	if b.Projects != nil {
		s.state.Projects = mergeProjects(s.state.Projects, b.Projects)
	}
	if b.Docs != nil {
		s.state.Docs = mergeDocs(s.state.Docs, b.Docs)
	}
	if b.Whiteboards != nil {
		s.state.Whiteboards = mergeWhiteboards(s.state.Whiteboards, b.Whiteboards)
	}
}

func asMaps(docs []remote.Document) []map[string]any {
	out := make([]map[string]any, len(docs))
	for i, d := range docs {
		out[i] = d
	}
	return out
}

func mergeTasks(existing, incoming []item.Task) []item.Task {
	index := make(map[string]int, len(existing))
	out := append([]item.Task(nil), existing...)
	for i, t := range out {
		index[t.ID] = i
	}
	for _, t := range incoming {
		if i, ok := index[t.ID]; ok {
			out[i] = t
		} else {
			index[t.ID] = len(out)
			out = append(out, t)
		}
	}
	return out
}

func mergeProjects(existing, incoming []item.Project) []item.Project {
	index := make(map[string]int, len(existing))
	out := append([]item.Project(nil), existing...)
	for i, p := range out {
		index[p.ID] = i
	}
	for _, p := range incoming {
		if i, ok := index[p.ID]; ok {
			out[i] = p
		} else {
			index[p.ID] = len(out)
			out = append(out, p)
		}
	}
	return out
}

func mergeDocs(existing, incoming []item.Doc) []item.Doc {
	index := make(map[string]int, len(existing))
	out := append([]item.Doc(nil), existing...)
	for i, d := range out {
		index[d.ID] = i
	}
	for _, d := range incoming {
		if i, ok := index[d.ID]; ok {
			out[i] = d
		} else {
			index[d.ID] = len(out)
			out = append(out, d)
		}
	}
	return out
}

func mergeWhiteboards(existing, incoming []item.Whiteboard) []item.Whiteboard {
	index := make(map[string]int, len(existing))
	out := append([]item.Whiteboard(nil), existing...)
	for i, w := range out {
		index[w.ID] = i
	}
	for _, w := range incoming {
		if i, ok := index[w.ID]; ok {
			out[i] = w
		} else {
			index[w.ID] = len(out)
			out = append(out, w)
		}
	}
	return out
}
