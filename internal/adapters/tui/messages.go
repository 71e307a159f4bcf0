package tui

import (
	"time"

	"go.trai.ch/tana/internal/core/domain"
)

// MsgWatchStart announces that watching has begun.
type MsgWatchStart struct {
	Root        string
	Collections int
}

// MsgOpStart indicates a traced operation has started.
type MsgOpStart struct {
	SpanID    string
	ParentID  string // empty for root spans
	Name      string
	StartTime time.Time
}

// MsgOpLog carries a chunk of output for a running operation.
type MsgOpLog struct {
	SpanID string
	Data   []byte
}

// MsgOpComplete indicates an operation has finished.
type MsgOpComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}

// MsgLibraryChanged carries a reconciled diff and the snapshot it led to.
type MsgLibraryChanged struct {
	Snap domain.Snapshot
	Diff domain.Diff
}
