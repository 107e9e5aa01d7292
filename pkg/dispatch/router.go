// Package dispatch is the persistence router: it turns high-level intents
// into remote writes and deletes. The replica is only ever updated through
// the sync listener's echo, except for the optimistic bulk-import path.
package dispatch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tableflip.dev/flowstate/pkg/dates"
	"tableflip.dev/flowstate/pkg/item"
	"tableflip.dev/flowstate/pkg/remote"
	"tableflip.dev/flowstate/pkg/replica"
)

// Router routes intents to the remote store. With no signed-in identity
// every intent is a silent no-op — the boot window before authentication
// resolves must not error. Write failures propagate to the caller and are
// not retried.
type Router struct {
	Store   remote.Store
	Replica *replica.Store
	Clock   dates.Clock

	// NewID mints client-side document ids. Defaults to UUIDv4.
	NewID func() string
}

// NewRouter wires a router over the given store and replica.
func NewRouter(store remote.Store, rep *replica.Store, clock dates.Clock) *Router {
	return &Router{Store: store, Replica: rep, Clock: clock, NewID: uuid.NewString}
}

type route struct {
	collection remote.Collection
	handle     func(r *Router, ctx context.Context, user string, payload any) error
}

// routes is the closed intent table. Adding an intent kind means adding a
// row here; nothing is inferred from the kind's name at runtime.
var routes = map[Kind]route{
	AddTask:     {remote.Tasks, (*Router).addTask},
	UpdateTask:  {remote.Tasks, (*Router).updateTask},
	DeleteTask:  {remote.Tasks, deleteIn(remote.Tasks)},
	RestoreTask: {remote.Tasks, setArchived(false)},
	ArchiveTask: {remote.Tasks, setArchived(true)},

	AddProject:    {remote.Projects, (*Router).addProject},
	UpdateProject: {remote.Projects, (*Router).updateProject},
	DeleteProject: {remote.Projects, deleteIn(remote.Projects)},
	TouchProject:  {remote.Projects, (*Router).touchProject},

	AddDoc:    {remote.Docs, (*Router).addDoc},
	UpdateDoc: {remote.Docs, (*Router).updateDoc},
	DeleteDoc: {remote.Docs, deleteIn(remote.Docs)},

	AddWhiteboard:    {remote.Whiteboards, (*Router).addWhiteboard},
	UpdateWhiteboard: {remote.Whiteboards, (*Router).updateWhiteboard},
	DeleteWhiteboard: {remote.Whiteboards, deleteIn(remote.Whiteboards)},

	ImportData: {"", (*Router).importData},
}

// Target reports the collection an intent kind writes to, and whether the
// kind is known at all. ImportData spans every collection and reports "".
func Target(k Kind) (remote.Collection, bool) {
	r, ok := routes[k]
	return r.collection, ok
}

// Dispatch performs the writes for one intent. Unknown kinds and absent
// identity are silent no-ops.
func (r *Router) Dispatch(ctx context.Context, in Intent) error {
	user := r.Replica.Identity()
	if user == "" {
		return nil
	}
	route, ok := routes[in.Kind]
	if !ok {
		return nil
	}
	return route.handle(r, ctx, user, in.Payload)
}

func (r *Router) today() string {
	return r.Clock.Today().String()
}

func (r *Router) newID() string {
	if r.NewID != nil {
		return r.NewID()
	}
	return uuid.NewString()
}

func (r *Router) upsert(ctx context.Context, user string, c remote.Collection, v any) error {
	doc, err := item.ToDocument(v)
	if err != nil {
		return err
	}
	return r.Store.Upsert(ctx, user, c, doc)
}

func (r *Router) addTask(ctx context.Context, user string, payload any) error {
	t, ok := payload.(item.Task)
	if !ok {
		return fmt.Errorf("dispatch: %s payload must be item.Task, got %T", AddTask, payload)
	}
	if t.ID == "" {
		t.ID = r.newID()
	}
	if t.Status == "" {
		t.Status = item.StatusNotStarted
	}
	if t.LastInteracted == "" {
		t.LastInteracted = r.today()
	}
	if t.ICE == nil {
		t.ICE = &item.ICE{Impact: 1, Confidence: 1, Ease: 1}
	}
	return r.upsert(ctx, user, remote.Tasks, t)
}

func (r *Router) updateTask(ctx context.Context, user string, payload any) error {
	t, ok := payload.(item.Task)
	if !ok {
		return fmt.Errorf("dispatch: %s payload must be item.Task, got %T", UpdateTask, payload)
	}
	t.LastInteracted = r.today()
	return r.upsert(ctx, user, remote.Tasks, t)
}

// setArchived flips only the archived field, leaving everything else on the
// stored document untouched — restore and archive never rewrite the task.
func setArchived(archived bool) func(r *Router, ctx context.Context, user string, payload any) error {
	return func(r *Router, ctx context.Context, user string, payload any) error {
		id, ok := payload.(string)
		if !ok {
			return fmt.Errorf("dispatch: archive/restore payload must be a task id, got %T", payload)
		}
		doc := remote.Document{"id": id, "archived": archived}
		return r.Store.Upsert(ctx, user, remote.Tasks, doc)
	}
}

func deleteIn(c remote.Collection) func(r *Router, ctx context.Context, user string, payload any) error {
	return func(r *Router, ctx context.Context, user string, payload any) error {
		id, ok := payload.(string)
		if !ok {
			return fmt.Errorf("dispatch: delete payload must be an id, got %T", payload)
		}
		return r.Store.Delete(ctx, user, c, id)
	}
}

func (r *Router) addProject(ctx context.Context, user string, payload any) error {
	p, ok := payload.(item.Project)
	if !ok {
		return fmt.Errorf("dispatch: %s payload must be item.Project, got %T", AddProject, payload)
	}
	if p.ID == "" {
		p.ID = r.newID()
	}
	if p.LastUpdated == "" {
		p.LastUpdated = r.today()
	}
	return r.upsert(ctx, user, remote.Projects, p)
}

func (r *Router) updateProject(ctx context.Context, user string, payload any) error {
	p, ok := payload.(item.Project)
	if !ok {
		return fmt.Errorf("dispatch: %s payload must be item.Project, got %T", UpdateProject, payload)
	}
	p.LastUpdated = r.today()
	return r.upsert(ctx, user, remote.Projects, p)
}

// touchProject re-upserts the project as the replica knows it with a fresh
// lastInteracted stamp: "this project was opened" without an edit flow.
// Touching an id the replica has never seen is a no-op.
func (r *Router) touchProject(ctx context.Context, user string, payload any) error {
	id, ok := payload.(string)
	if !ok {
		return fmt.Errorf("dispatch: %s payload must be a project id, got %T", TouchProject, payload)
	}
	for _, p := range r.Replica.State().Projects {
		if p.ID == id {
			p.LastInteracted = r.today()
			return r.upsert(ctx, user, remote.Projects, p)
		}
	}
	return nil
}

func (r *Router) addDoc(ctx context.Context, user string, payload any) error {
	d, ok := payload.(item.Doc)
	if !ok {
		return fmt.Errorf("dispatch: %s payload must be item.Doc, got %T", AddDoc, payload)
	}
	if d.ID == "" {
		d.ID = r.newID()
	}
	if d.LastUpdated == "" {
		d.LastUpdated = r.today()
	}
	return r.upsert(ctx, user, remote.Docs, d)
}

func (r *Router) updateDoc(ctx context.Context, user string, payload any) error {
	d, ok := payload.(item.Doc)
	if !ok {
		return fmt.Errorf("dispatch: %s payload must be item.Doc, got %T", UpdateDoc, payload)
	}
	d.LastUpdated = r.today()
	return r.upsert(ctx, user, remote.Docs, d)
}

func (r *Router) addWhiteboard(ctx context.Context, user string, payload any) error {
	w, ok := payload.(item.Whiteboard)
	if !ok {
		return fmt.Errorf("dispatch: %s payload must be item.Whiteboard, got %T", AddWhiteboard, payload)
	}
	if w.ID == "" {
		w.ID = r.newID()
	}
	if w.LastUpdated == "" {
		w.LastUpdated = r.today()
	}
	return r.upsert(ctx, user, remote.Whiteboards, w)
}

func (r *Router) updateWhiteboard(ctx context.Context, user string, payload any) error {
	w, ok := payload.(item.Whiteboard)
	if !ok {
		return fmt.Errorf("dispatch: %s payload must be item.Whiteboard, got %T", UpdateWhiteboard, payload)
	}
	w.LastUpdated = r.today()
	return r.upsert(ctx, user, remote.Whiteboards, w)
}

// importData merges the bundle into the replica immediately, then issues
// one upsert per item across all four collections. The writes are
// independent: there is no atomicity across them, and a failure partway
// leaves earlier writes in place.
func (r *Router) importData(ctx context.Context, user string, payload any) error {
	b, ok := payload.(replica.Bundle)
	if !ok {
		return fmt.Errorf("dispatch: %s payload must be replica.Bundle, got %T", ImportData, payload)
	}

	for i := range b.Tasks {
		if b.Tasks[i].ID == "" {
			b.Tasks[i].ID = r.newID()
		}
	}
	for i := range b.Projects {
		if b.Projects[i].ID == "" {
			b.Projects[i].ID = r.newID()
		}
	}
	for i := range b.Docs {
		if b.Docs[i].ID == "" {
			b.Docs[i].ID = r.newID()
		}
	}
	for i := range b.Whiteboards {
		if b.Whiteboards[i].ID == "" {
			b.Whiteboards[i].ID = r.newID()
		}
	}

	r.Replica.Import(b)

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for _, t := range b.Tasks {
		keep(r.upsert(ctx, user, remote.Tasks, t))
	}
	for _, p := range b.Projects {
		keep(r.upsert(ctx, user, remote.Projects, p))
	}
	for _, d := range b.Docs {
		keep(r.upsert(ctx, user, remote.Docs, d))
	}
	for _, w := range b.Whiteboards {
		keep(r.upsert(ctx, user, remote.Whiteboards, w))
	}
	return firstErr
}
