package remote

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Subscribe delivers the collection's current documents immediately, then a
// fresh snapshot after every burst of filesystem changes under the user's
// collection directory. The channel closes when ctx is cancelled or the
// watcher fails.
func (s *Disk) Subscribe(ctx context.Context, user string, c Collection, q Query) (<-chan []Document, error) {
	if s.basePath == "" {
		return nil, errors.New("remote: store base path unknown")
	}
	dir := filepath.Join(s.basePath, encodeUser(user), string(c))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("remote: ensure collection directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("remote: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "remote: watcher close: %v\n", err)
			}
		})
	}

	dirs, err := collectDirs(dir)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("remote: enumerate directories: %w", err)
	}
	for _, d := range dirs {
		if err := watcher.Add(d); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("remote: watch %s: %w", d, err)
		}
	}

	snapshots := make(chan []Document, 8)

	deliver := func() {
		docs, err := s.List(ctx, user, c, q)
		if err != nil {
			fmt.Fprintf(os.Stderr, "remote: list %s: %v\n", c, err)
			return
		}
		select {
		case snapshots <- docs:
		default:
			// Drop when the consumer lags; the next change delivers the
			// then-current state again.
		}
	}

	go func() {
		defer close(snapshots)
		defer closeWatcher()

		deliver()

		// Coalesce filesystem storms into one snapshot per burst. An armed
		// timer owns one pending send, counted on inflight until its
		// callback finishes or the timer is stopped before firing.
		var mu sync.Mutex
		var timer *time.Timer
		var inflight sync.WaitGroup
		enqueue := func() {
			mu.Lock()
			if timer == nil {
				inflight.Add(1)
				timer = time.AfterFunc(100*time.Millisecond, func() {
					defer inflight.Done()
					mu.Lock()
					timer = nil
					mu.Unlock()
					deliver()
				})
			}
			mu.Unlock()
		}
		defer func() {
			mu.Lock()
			if timer != nil && timer.Stop() {
				inflight.Done()
			}
			mu.Unlock()
			// A callback that already fired may still be mid-delivery;
			// snapshots must not close under it.
			inflight.Wait()
		}()

		watched := make(map[string]struct{}, len(dirs))
		for _, d := range dirs {
			watched[d] = struct{}{}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				_ = err
				enqueue()
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								fmt.Fprintf(os.Stderr, "remote: watch %s: %v\n", absDir, err)
							} else {
								watched[absDir] = struct{}{}
							}
						}
					}
				}
				enqueue()
			}
		}
	}()

	return snapshots, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}
