package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the cached collection changed on disk, typically because
// `eventory refresh` ran in another process.
type Event struct{}

// Watch streams change events until ctx is cancelled. Bursts of filesystem
// activity (a refresh rewrites every record) are coalesced into a single
// event. The channel is closed once ctx is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	bucketDir := filepath.Join(p.basePath, bucket)
	if err := os.MkdirAll(bucketDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure bucket path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	for _, dir := range []string{p.basePath, bucketDir} {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 1)

	go func() {
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		var mu sync.Mutex
		var timer *time.Timer
		var stopped bool

		// The pending flush callback sends under mu, and stopped flips under
		// mu before the close, so a timer armed at shutdown can never send on
		// the closed channel.
		defer func() {
			mu.Lock()
			defer mu.Unlock()
			stopped = true
			if timer != nil {
				timer.Stop()
				timer = nil
			}
			close(events)
		}()

		notify := func() {
			mu.Lock()
			defer mu.Unlock()
			if stopped || timer != nil {
				// A flush is already pending; let it cover this change too.
				return
			}
			timer = time.AfterFunc(100*time.Millisecond, func() {
				mu.Lock()
				defer mu.Unlock()
				timer = nil
				if stopped {
					return
				}
				select {
				case events <- Event{}:
				default:
					// Consumer not ready; the buffered event already pending
					// covers this change.
				}
			})
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				notify()
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				notify()
			}
		}
	}()

	return events, nil
}
