package remote

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Disk is a Store persisted through diskv. Each document lives at
// <base>/<user>/<collection>/<id> as a JSON object; the user segment is
// hex-encoded so identities never have to be filesystem-safe.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// NewDisk opens (or creates) a disk store rooted at basePath.
func NewDisk(basePath string) *Disk {
	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
}

func (s *Disk) Upsert(ctx context.Context, user string, c Collection, doc Document) error {
	id := doc.ID()
	if id == "" {
		return ErrMissingID
	}
	key := toKey(user, c, id)

	merged := doc
	if raw, err := s.d.Read(key); err == nil {
		existing := make(Document)
		if err := json.Unmarshal(raw, &existing); err == nil {
			for k, v := range doc {
				existing[k] = v
			}
			merged = existing
		}
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("remote: encode %s/%s: %w", c, id, err)
	}
	return s.d.Write(key, data)
}

func (s *Disk) Delete(ctx context.Context, user string, c Collection, id string) error {
	if id == "" {
		return ErrMissingID
	}
	key := toKey(user, c, id)
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}

func (s *Disk) List(ctx context.Context, user string, c Collection, q Query) ([]Document, error) {
	prefix := encodeUser(user) + "-" + string(c) + "-"
	docs := make([]Document, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		raw, err := s.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "remote: %s: %s\n", key, err)
			continue
		}
		doc := make(Document)
		if err := json.Unmarshal(raw, &doc); err != nil {
			fmt.Fprintf(os.Stderr, "remote: %s: %s\n", key, err)
			continue
		}
		if q.matches(doc) {
			docs = append(docs, doc)
		}
	}
	sortDocuments(docs)
	return docs, nil
}

// sortDocuments fixes the store-assigned order: ascending id. Snapshots of
// the same data always materialize identically.
func sortDocuments(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].ID() < docs[j].ID()
	})
}

func toKey(user string, c Collection, id string) string {
	return fmt.Sprintf("%s-%s-%s", encodeUser(user), c, id)
}

func encodeUser(user string) string {
	return hex.EncodeToString([]byte(user))
}

// keyToPathTransform maps `user-collection-id` onto nested directories.
// Only the first two separators split; document ids may themselves contain
// dashes.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) < 3 {
		return &diskv.PathKey{FileName: s}
	}
	return &diskv.PathKey{Path: parts[:2], FileName: parts[2]}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
