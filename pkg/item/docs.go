package item

import "encoding/json"

// Doc is a rich-text document. Content is opaque to the sync core.
type Doc struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ProjectID   string `json:"projectId,omitempty"`
	Content     string `json:"content,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// Whiteboard is a drawing canvas. Content holds the canvas snapshot and is
// opaque to the sync core.
type Whiteboard struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	ProjectID   string          `json:"projectId,omitempty"`
	Content     json.RawMessage `json:"content,omitempty"`
	CreatedAt   string          `json:"createdAt,omitempty"`
	LastUpdated string          `json:"lastUpdated,omitempty"`
}
