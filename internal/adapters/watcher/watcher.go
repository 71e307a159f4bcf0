// Package watcher implements recursive library watching using fsnotify.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/tana/internal/core/domain"
	"go.trai.ch/tana/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements ports.Watcher on top of fsnotify. It registers the
// library root and every directory below it, converts raw notifications
// into domain.WatchEvent values, and pairs rename/create sequences into
// single rename events where possible.
type Watcher struct {
	mu           sync.Mutex
	fsWatcher    *fsnotify.Watcher
	events       chan domain.WatchEvent
	done         chan struct{}
	watching     bool
	renameWindow time.Duration
	logger       ports.Logger
}

// New creates a watcher. renameWindow is how long a rename waits for its
// follow-up create before degrading to a removal.
func New(renameWindow time.Duration, logger ports.Logger) *Watcher {
	return &Watcher{
		renameWindow: renameWindow,
		logger:       logger,
	}
}

// Start validates the root and begins watching it recursively. Starting an
// already-watching watcher logs and returns without error.
func (w *Watcher) Start(ctx context.Context, root string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watching {
		w.logger.Warn("watcher already started, ignoring")
		return nil
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return zerr.With(domain.ErrInvalidRoot, "root", root)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	for dir := range walkDirectories(root) {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return err
		}
	}

	w.fsWatcher = fsWatcher
	w.events = make(chan domain.WatchEvent, eventChannelBuffer)
	w.done = make(chan struct{})
	w.watching = true

	go w.processEvents(ctx)

	return nil
}

// Stop unsubscribes and blocks until the event loop has fully quiesced.
// No further events are delivered after Stop returns.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.watching {
		w.mu.Unlock()
		return nil
	}
	w.watching = false
	fsWatcher := w.fsWatcher
	done := w.done
	w.mu.Unlock()

	err := fsWatcher.Close()
	<-done
	return err
}

// Events returns an iterator of filesystem events. The sequence ends when
// the watcher stops.
func (w *Watcher) Events() iter.Seq[domain.WatchEvent] {
	w.mu.Lock()
	events := w.events
	w.mu.Unlock()

	return func(yield func(domain.WatchEvent) bool) {
		for event := range events {
			if !yield(event) {
				return
			}
		}
	}
}

// walkDirectories walks the tree and yields every directory, skipping
// subtrees it cannot read.
func walkDirectories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable entries are skipped, not fatal
			}
			if d.IsDir() {
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

// processEvents converts raw fsnotify events into domain events until the
// underlying watcher closes or the context is cancelled.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.done)
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.handle(ctx, event) {
				return
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, "filesystem notification error"))
		}
	}
}

// handle converts one raw event. It returns false when the watcher should
// stop because the context was cancelled or the source closed.
func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) bool {
	switch {
	case event.Op.Has(fsnotify.Rename):
		return w.pairRename(ctx, event)
	case event.Op.Has(fsnotify.Create):
		isDir := statIsDir(event.Name)
		if !w.emit(ctx, domain.WatchEvent{Path: event.Name, Operation: domain.OpCreate, IsDir: isDir}) {
			return false
		}
		if isDir {
			w.addSubtree(event.Name)
		}
		return true
	case event.Op.Has(fsnotify.Write):
		return w.emit(ctx, domain.WatchEvent{Path: event.Name, Operation: domain.OpWrite, IsDir: statIsDir(event.Name)})
	case event.Op.Has(fsnotify.Remove):
		return w.emit(ctx, domain.WatchEvent{Path: event.Name, Operation: domain.OpRemove})
	default:
		// Chmod-only events carry no structural change.
		return true
	}
}

// pairRename waits briefly for the create that follows a rename within the
// watched tree and emits both sides as a single rename event. A rename with
// no adjacent create means the path left the tree and degrades to a
// removal. Delivery is assumed to be in generation order for a given path;
// an unrelated create landing inside the window is indistinguishable from
// the rename's other half and both collections are re-derived downstream
// either way.
func (w *Watcher) pairRename(ctx context.Context, event fsnotify.Event) bool {
	timer := time.NewTimer(w.renameWindow)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return w.emit(ctx, domain.WatchEvent{Path: event.Name, Operation: domain.OpRemove})
	case next, ok := <-w.fsWatcher.Events:
		if !ok {
			return false
		}
		if !next.Op.Has(fsnotify.Create) {
			if !w.emit(ctx, domain.WatchEvent{Path: event.Name, Operation: domain.OpRemove}) {
				return false
			}
			return w.handle(ctx, next)
		}

		isDir := statIsDir(next.Name)
		if !w.emit(ctx, domain.WatchEvent{
			Path:      next.Name,
			OldPath:   event.Name,
			Operation: domain.OpRename,
			IsDir:     isDir,
		}) {
			return false
		}
		if isDir {
			// The moved directory's watch followed the old path; re-register.
			w.addSubtree(next.Name)
		}
		return true
	}
}

// addSubtree registers a directory created or moved while watching.
func (w *Watcher) addSubtree(root string) {
	for dir := range walkDirectories(root) {
		_ = w.fsWatcher.Add(dir)
	}
}

func (w *Watcher) emit(ctx context.Context, event domain.WatchEvent) bool {
	select {
	case w.events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

func statIsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
