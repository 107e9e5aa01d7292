package remote

import (
	"context"
	"sync"
)

// Memory is an in-process Store with live subscriptions. It backs tests and
// offline use, and doubles as the reference semantics for the disk store:
// merge-upsert by id, hard delete, snapshot-per-change delivery.
type Memory struct {
	mu   sync.Mutex
	data map[string]map[Collection][]Document
	subs map[*memorySub]struct{}
}

type memorySub struct {
	user string
	c    Collection
	q    Query
	ch   chan []Document
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]map[Collection][]Document),
		subs: make(map[*memorySub]struct{}),
	}
}

func (m *Memory) Upsert(ctx context.Context, user string, c Collection, doc Document) error {
	id := doc.ID()
	if id == "" {
		return ErrMissingID
	}

	m.mu.Lock()
	cols, ok := m.data[user]
	if !ok {
		cols = make(map[Collection][]Document)
		m.data[user] = cols
	}
	merged := false
	for i, existing := range cols[c] {
		if existing.ID() == id {
			for k, v := range doc {
				existing[k] = v
			}
			cols[c][i] = existing
			merged = true
			break
		}
	}
	if !merged {
		cols[c] = append(cols[c], cloneDocument(doc))
	}
	m.notifyLocked(user, c)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(ctx context.Context, user string, c Collection, id string) error {
	if id == "" {
		return ErrMissingID
	}

	m.mu.Lock()
	docs := m.data[user][c]
	for i, existing := range docs {
		if existing.ID() == id {
			m.data[user][c] = append(docs[:i:i], docs[i+1:]...)
			m.notifyLocked(user, c)
			break
		}
	}
	m.mu.Unlock()
	return nil
}

func (m *Memory) List(ctx context.Context, user string, c Collection, q Query) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked(user, c, q), nil
}

func (m *Memory) Subscribe(ctx context.Context, user string, c Collection, q Query) (<-chan []Document, error) {
	sub := &memorySub{user: user, c: c, q: q, ch: make(chan []Document, 64)}

	m.mu.Lock()
	m.subs[sub] = struct{}{}
	sub.ch <- m.snapshotLocked(user, c, q)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subs, sub)
		close(sub.ch)
		m.mu.Unlock()
	}()

	return sub.ch, nil
}

// notifyLocked fans the collection's fresh snapshot out to matching
// subscribers. Slow consumers drop intermediate snapshots; a later change
// will deliver the current state again.
func (m *Memory) notifyLocked(user string, c Collection) {
	for sub := range m.subs {
		if sub.user != user || sub.c != c {
			continue
		}
		select {
		case sub.ch <- m.snapshotLocked(user, c, sub.q):
		default:
		}
	}
}

func (m *Memory) snapshotLocked(user string, c Collection, q Query) []Document {
	docs := make([]Document, 0, len(m.data[user][c]))
	for _, d := range m.data[user][c] {
		if q.matches(d) {
			docs = append(docs, cloneDocument(d))
		}
	}
	return docs
}

func cloneDocument(d Document) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
