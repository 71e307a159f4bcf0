package ports

import (
	"context"
	"iter"

	"go.trai.ch/tana/internal/core/domain"
)

// Watcher defines the interface for watching the library root.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start validates the root and begins watching it recursively. It
	// returns domain.ErrInvalidRoot if the root is missing or not a
	// directory, and logs a no-op if already watching.
	Start(ctx context.Context, root string) error

	// Stop unsubscribes and blocks until the event loop has quiesced.
	// Stopping a stopped watcher is a no-op.
	Stop() error

	// Events returns an iterator over filesystem events. The sequence ends
	// when the watcher stops.
	Events() iter.Seq[domain.WatchEvent]
}
