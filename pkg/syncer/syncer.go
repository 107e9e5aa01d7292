// Package syncer is the remote sync listener. Signing in opens one live
// subscription per collection and funnels every snapshot into the replica;
// the handle it returns tears all of them down exactly once.
package syncer

import (
	"context"
	"fmt"
	"sync"

	"tableflip.dev/flowstate/pkg/remote"
	"tableflip.dev/flowstate/pkg/replica"
)

// Listener attaches remote subscriptions to the replica.
type Listener struct {
	Store   remote.Store
	Replica *replica.Store

	// OnError receives decode or delivery failures from the snapshot
	// goroutines. Nil means failures are dropped.
	OnError func(error)
}

// New wires a listener over the given store and replica.
func New(store remote.Store, rep *replica.Store) *Listener {
	return &Listener{Store: store, Replica: rep}
}

// Handle owns the subscriptions opened by one Begin call. Stop is safe to
// call any number of times from any goroutine; teardown runs once and Stop
// returns only after every snapshot goroutine has exited.
type Handle struct {
	cancel context.CancelFunc
	once   sync.Once
	wg     *sync.WaitGroup
}

// Stop cancels the subscriptions and waits for delivery to drain.
func (h *Handle) Stop() {
	h.once.Do(func() {
		h.cancel()
		h.wg.Wait()
	})
}

// query returns the subscription filter for a collection. Archived tasks
// stay out of the replica at the subscription, not in rendering code.
func query(c remote.Collection) remote.Query {
	if c == remote.Tasks {
		return remote.Query{ExcludeArchived: true}
	}
	return remote.Query{}
}

// Begin records the identity on the replica and opens a subscription for
// every collection. If any subscription fails to open, the ones already
// opened are torn down and the error is returned.
func (l *Listener) Begin(ctx context.Context, user string) (*Handle, error) {
	if user == "" {
		return nil, fmt.Errorf("syncer: empty user")
	}

	subCtx, cancel := context.WithCancel(ctx)
	wg := &sync.WaitGroup{}
	h := &Handle{cancel: cancel, wg: wg}

	l.Replica.SetIdentity(user)

	for _, c := range remote.Collections() {
		snapshots, err := l.Store.Subscribe(subCtx, user, c, query(c))
		if err != nil {
			h.Stop()
			return nil, fmt.Errorf("syncer: subscribe %s: %w", c, err)
		}
		wg.Add(1)
		go l.pump(wg, c, snapshots)
	}
	return h, nil
}

// pump copies snapshots into the replica until the store closes the
// channel. Each snapshot replaces the collection wholesale.
func (l *Listener) pump(wg *sync.WaitGroup, c remote.Collection, snapshots <-chan []remote.Document) {
	defer wg.Done()
	for docs := range snapshots {
		if err := l.Replica.ReplaceCollection(c, docs); err != nil {
			if l.OnError != nil {
				l.OnError(err)
			}
		}
	}
}
