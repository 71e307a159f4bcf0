package ports

import "go.trai.ch/tana/internal/core/domain"

// Notifier publishes library diffs to interested parties.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Publish broadcasts the diff. Empty diffs are dropped.
	Publish(diff domain.Diff)
}
