package jsondb

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// watchMinInterval caps how often Watch signals; file event bursts within
// the interval collapse into a single pending signal.
const watchMinInterval = 100 * time.Millisecond

// Watch reports modifications to the backing file until ctx is cancelled.
// A receive from the returned channel means the file changed since the
// last receive and should be re-read; signals are coalesced rather than
// one-per-write, and fire for this process's own persists as well since
// file events carry no writer identity. The parent directory is watched so
// editors that replace the file are still observed. The channel is closed
// when ctx is done or the watcher shuts down; watcher errors are logged
// and do not stop the loop.
func (s *Store) Watch(ctx context.Context) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.path, err)
	}

	limiter := rate.NewLimiter(rate.Every(watchMinInterval), 1)
	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				if err := limiter.Wait(ctx); err != nil {
					return
				}
				select {
				case ch <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.WarnContext(ctx, "Error watching store file", "path", s.path, "err", err)
			}
		}
	}()
	return ch, nil
}
