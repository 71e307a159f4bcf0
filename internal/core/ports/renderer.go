package ports

import (
	"context"
	"time"

	"go.trai.ch/tana/internal/core/domain"
)

// Renderer is the abstraction for output rendering. It decouples the index
// engine from presentation, allowing the same event stream to drive either
// a live TUI dashboard or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle. Asynchronous
	// renderers (like the TUI) may launch background goroutines here.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and flush any
	// buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnWatchStart is called once when watching begins.
	// root: the watched library root
	// collections: number of collections after the initial scan
	OnWatchStart(root string, collections int)

	// OnOpStart is called when a traced operation (scan, event batch,
	// flush) begins.
	OnOpStart(spanID, parentID, name string, startTime time.Time)

	// OnOpLog is called when an operation emits output.
	OnOpLog(spanID string, data []byte)

	// OnOpComplete is called when an operation finishes.
	OnOpComplete(spanID string, endTime time.Time, err error)

	// OnLibraryChanged is called after a reconcile produced a non-empty
	// diff, with the snapshot the diff led to.
	OnLibraryChanged(snap domain.Snapshot, diff domain.Diff)
}
