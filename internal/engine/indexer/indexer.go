// Package indexer drives the library index: it scans the root, consumes
// classified watcher events, updates the store, and reconciles snapshots
// into diffs for downstream notification.
package indexer

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/tana/internal/core/domain"
	"go.trai.ch/tana/internal/core/ports"
	"go.trai.ch/tana/internal/engine/throttle"
	"go.trai.ch/zerr"
)

// Config bundles the collaborators of an Indexer.
type Config struct {
	Root     string
	Store    ports.LibraryStore
	Watcher  ports.Watcher
	Notifier ports.Notifier
	Renderer ports.Renderer
	Logger   ports.Logger
	Metrics  ports.Metrics
	Tracer   trace.Tracer
	// NotifyWindow throttles reconcile broadcasts during event bursts.
	NotifyWindow time.Duration
}

// Indexer owns the event-processing loop. Store mutations happen inline on
// the loop goroutine; the notify throttle's timer goroutine only reads
// snapshots, guarded by mu.
type Indexer struct {
	cfg Config

	mu   sync.Mutex
	prev domain.Snapshot

	notify *throttle.Throttle
}

// New creates an Indexer. The previous snapshot baseline is the store's
// content as loaded from disk, so the first reconcile reports only what
// actually changed across the downtime.
func New(cfg Config) *Indexer {
	ix := &Indexer{
		cfg:  cfg,
		prev: cfg.Store.Snapshot(),
	}
	ix.notify = throttle.New(cfg.NotifyWindow, ix.publish)
	return ix
}

// Run scans the library, starts the watcher, and processes events until the
// event stream ends (watcher stopped) or the context is cancelled. The
// caller stops the watcher; Run drains and performs a final publish.
func (ix *Indexer) Run(ctx context.Context) error {
	if err := ix.Scan(ctx); err != nil {
		return err
	}

	if err := ix.cfg.Watcher.Start(ctx, ix.cfg.Root); err != nil {
		return err
	}
	ix.cfg.Renderer.OnWatchStart(ix.cfg.Root, ix.cfg.Store.Len())

	for ev := range ix.cfg.Watcher.Events() {
		ix.Apply(ctx, ev)
	}

	ix.notify.Stop()
	ix.publish()
	return nil
}

// Scan re-derives every collection from a full directory listing of the
// root, removes records whose directories are gone, and publishes the
// resulting diff immediately.
func (ix *Indexer) Scan(ctx context.Context) error {
	_, span := ix.cfg.Tracer.Start(ctx, "scan")
	defer span.End()

	entries, err := os.ReadDir(ix.cfg.Root)
	if err != nil {
		err = zerr.With(domain.ErrInvalidRoot, "root", ix.cfg.Root)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		seen[entry.Name()] = true
		ix.refreshCollection(entry.Name())
	}

	for id := range ix.cfg.Store.Snapshot() {
		if !seen[id] {
			ix.cfg.Store.Delete(id)
		}
	}

	span.SetAttributes(attribute.Int("collections", ix.cfg.Store.Len()))
	ix.cfg.Metrics.ScanCompleted()

	ix.notify.Stop()
	ix.publish()
	return nil
}

// Apply processes one watcher event. Failures are isolated per event: a
// misclassified or unreadable collection never aborts the loop.
func (ix *Indexer) Apply(ctx context.Context, ev domain.WatchEvent) {
	act, err := domain.Classify(ix.cfg.Root, ev)
	if err != nil {
		ix.cfg.Logger.Error(err)
		return
	}
	if act.Kind == domain.ActionNone {
		return
	}

	_, span := ix.cfg.Tracer.Start(ctx, "event",
		trace.WithAttributes(
			attribute.String("op", ev.Operation.String()),
			attribute.String("collection", act.Collection),
		))
	defer span.End()

	switch act.Kind {
	case domain.ActionCollectionUpsert:
		ix.refreshCollection(act.Collection)
	case domain.ActionCollectionRemove:
		ix.cfg.Store.Delete(act.Collection)
	case domain.ActionCollectionRename:
		// Migrating the key preserves created_at and history; a rename of a
		// collection the store never saw falls back to a fresh derivation.
		newPath := filepath.Join(ix.cfg.Root, act.Collection)
		if !ix.cfg.Store.Rename(act.OldCollection, act.Collection, newPath) {
			ix.refreshCollection(act.Collection)
		}
	case domain.ActionChapterChange:
		// Re-derive the whole collection from disk rather than patching the
		// chapter set incrementally; disk stays the single source of truth.
		ix.refreshCollection(act.Collection)
		if act.Second != "" {
			ix.refreshCollection(act.Second)
		}
	}

	ix.cfg.Metrics.EventProcessed(ev.Operation.String())
	ix.notify.Schedule()
}

// refreshCollection re-derives one collection record from its directory
// listing. A missing directory deletes the record; an existing one merges
// the sorted archive list, preserving created_at for known collections.
func (ix *Indexer) refreshCollection(id string) {
	dir := filepath.Join(ix.cfg.Root, id)

	entries, err := os.ReadDir(dir)
	if err != nil {
		ix.cfg.Store.Delete(id)
		return
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), domain.ChapterExtension) {
			files = append(files, entry.Name())
		}
	}
	slices.Sort(files)

	now := time.Now().UTC()
	rec := domain.CollectionRecord{
		Path:          dir,
		CreatedAt:     now,
		LastUpdated:   now,
		CBZFiles:      files,
		TotalChapters: len(files),
	}
	if existing, ok := ix.cfg.Store.Get(id); ok {
		if existing.SameContent(rec) {
			return
		}
		rec.CreatedAt = existing.CreatedAt
	}
	ix.cfg.Store.Set(id, rec)
}

// publish reconciles the current snapshot against the last published one
// and broadcasts the diff when it is non-empty.
func (ix *Indexer) publish() {
	ix.mu.Lock()
	curr := ix.cfg.Store.Snapshot()
	diff := domain.Reconcile(ix.prev, curr)
	if diff.Empty() {
		ix.mu.Unlock()
		return
	}
	ix.prev = curr
	ix.mu.Unlock()

	ix.cfg.Notifier.Publish(diff)
	ix.cfg.Renderer.OnLibraryChanged(curr, diff)
	ix.cfg.Metrics.DiffPublished()
}
