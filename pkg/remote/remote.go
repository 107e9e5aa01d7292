package remote

import (
	"context"
	"errors"
)

// Collection names one of the per-user document buckets.
type Collection string

const (
	Tasks       Collection = "tasks"
	Projects    Collection = "projects"
	Docs        Collection = "docs"
	Whiteboards Collection = "whiteboards"
)

// Collections lists every bucket in subscription order.
func Collections() []Collection {
	return []Collection{Tasks, Projects, Docs, Whiteboards}
}

// Document is the persisted shape of an item: its full field map keyed by
// wire field name, always carrying a non-empty "id".
type Document map[string]any

// ID returns the document identifier, or "" when absent.
func (d Document) ID() string {
	id, _ := d["id"].(string)
	return id
}

// Query narrows a list or subscription. The task subscription excludes
// archived documents at the query, not in the UI.
type Query struct {
	ExcludeArchived bool
}

func (q Query) matches(d Document) bool {
	if q.ExcludeArchived {
		if archived, _ := d["archived"].(bool); archived {
			return false
		}
	}
	return true
}

// ErrMissingID rejects any write issued without a document identifier.
var ErrMissingID = errors.New("remote: document id required")

// Store is the remote document store collaborator: authenticated per-user
// named collections with merge-upsert, hard delete, and live snapshot
// subscriptions.
type Store interface {
	// Upsert merges the document's fields into the stored document with
	// the same id, creating it if absent. Fields not present in doc are
	// left untouched.
	Upsert(ctx context.Context, user string, c Collection, doc Document) error

	// Delete removes the document outright. Deleting an absent id is not
	// an error.
	Delete(ctx context.Context, user string, c Collection, id string) error

	// List materializes the collection's current documents matching q.
	List(ctx context.Context, user string, c Collection, q Query) ([]Document, error)

	// Subscribe delivers the full matching result set immediately and
	// again after every change, until ctx is cancelled. The channel is
	// closed once delivery stops.
	Subscribe(ctx context.Context, user string, c Collection, q Query) (<-chan []Document, error)
}
