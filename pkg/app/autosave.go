package app

import (
	"context"
	"sync"
	"time"

	"tableflip.dev/flowstate/pkg/dispatch"
)

// Autosaver coalesces rapid edits to the same document into one write. Each
// document id carries its own timer; queueing again before it fires
// replaces the pending intent and restarts the delay, so the newest edit
// wins and one keystroke burst costs one write.
type Autosaver struct {
	Delay    time.Duration
	Dispatch func(ctx context.Context, in dispatch.Intent) error

	// OnError receives dispatch failures from fired timers. Nil means
	// failures are dropped.
	OnError func(error)

	mu      sync.Mutex
	pending map[string]*pendingSave
}

type pendingSave struct {
	timer  *time.Timer
	ctx    context.Context
	intent dispatch.Intent
}

// NewAutosaver builds an autosaver with the given debounce delay.
func NewAutosaver(delay time.Duration, dispatchFn func(ctx context.Context, in dispatch.Intent) error) *Autosaver {
	return &Autosaver{
		Delay:    delay,
		Dispatch: dispatchFn,
		pending:  make(map[string]*pendingSave),
	}
}

// Queue schedules the intent to fire after the delay, superseding any
// still-pending intent for the same document id.
func (a *Autosaver) Queue(ctx context.Context, id string, in dispatch.Intent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if p, ok := a.pending[id]; ok {
		p.timer.Stop()
		p.ctx = ctx
		p.intent = in
		p.timer.Reset(a.Delay)
		return
	}
	p := &pendingSave{ctx: ctx, intent: in}
	p.timer = time.AfterFunc(a.Delay, func() { a.fire(id) })
	a.pending[id] = p
}

// Flush fires every pending save immediately. Editors call it on blur and
// the app calls it on shutdown so nothing is lost to an unexpired timer.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	var ids []string
	for id, p := range a.pending {
		p.timer.Stop()
		ids = append(ids, id)
	}
	a.mu.Unlock()
	for _, id := range ids {
		a.fire(id)
	}
}

func (a *Autosaver) fire(id string) {
	a.mu.Lock()
	p, ok := a.pending[id]
	if ok {
		delete(a.pending, id)
	}
	a.mu.Unlock()
	if !ok {
		return
	}
	if err := a.Dispatch(p.ctx, p.intent); err != nil && a.OnError != nil {
		a.OnError(err)
	}
}
