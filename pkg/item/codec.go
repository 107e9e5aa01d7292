package item

import (
	"encoding/json"
	"fmt"
)

// ToDocument flattens a typed item into the field map the remote store
// persists. The round trip through JSON keeps the wire field names in one
// place (the struct tags).
func ToDocument(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("item: encode document: %w", err)
	}
	doc := make(map[string]any)
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("item: encode document: %w", err)
	}
	return doc, nil
}

func decodeInto(docs []map[string]any, out any) error {
	b, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("item: decode documents: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("item: decode documents: %w", err)
	}
	return nil
}

// DecodeTasks materializes typed tasks from remote documents, preserving
// the order they arrived in.
func DecodeTasks(docs []map[string]any) ([]Task, error) {
	tasks := make([]Task, 0, len(docs))
	err := decodeInto(docs, &tasks)
	return tasks, err
}

func DecodeProjects(docs []map[string]any) ([]Project, error) {
	projects := make([]Project, 0, len(docs))
	err := decodeInto(docs, &projects)
	return projects, err
}

func DecodeDocs(docs []map[string]any) ([]Doc, error) {
	out := make([]Doc, 0, len(docs))
	err := decodeInto(docs, &out)
	return out, err
}

func DecodeWhiteboards(docs []map[string]any) ([]Whiteboard, error) {
	boards := make([]Whiteboard, 0, len(docs))
	err := decodeInto(docs, &boards)
	return boards, err
}
