// Package throttle bounds the rate of a side-effecting action, coalescing
// bursts into at most one execution per window.
package throttle

import (
	"sync"
	"time"
)

// Throttle executes a callback at most once per window. A call arriving
// after a quiet period of at least one window runs immediately (leading
// edge); calls inside the window arm a single timer for the remainder of
// it. A pending timer is never re-armed by later calls: the earliest
// deadline wins and everything scheduled before it coalesces into that one
// execution. The callback reads whatever state is current at fire time, so
// the final call of a burst is never dropped.
type Throttle struct {
	mu      sync.Mutex
	window  time.Duration
	fn      func()
	last    time.Time
	timer   *time.Timer
	pending bool
}

// New creates a Throttle around fn with the given window.
func New(window time.Duration, fn func()) *Throttle {
	return &Throttle{window: window, fn: fn}
}

// Schedule requests an execution of the callback. It runs the callback
// synchronously when the window has already elapsed, otherwise it arms the
// deferred execution if none is pending.
func (t *Throttle) Schedule() {
	t.mu.Lock()

	elapsed := time.Since(t.last)
	if elapsed >= t.window {
		t.last = time.Now()
		t.mu.Unlock()
		t.fn()
		return
	}

	if !t.pending {
		t.pending = true
		t.timer = time.AfterFunc(t.window-elapsed, t.fire)
	}
	t.mu.Unlock()
}

// fire runs the deferred execution, unless it was cancelled in the meantime.
func (t *Throttle) fire() {
	t.mu.Lock()
	if !t.pending {
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.timer = nil
	t.last = time.Now()
	t.mu.Unlock()

	t.fn()
}

// Flush cancels any pending timer and runs the callback synchronously. If
// the timer already fired and the callback is underway, Flush returns
// without running it a second time.
func (t *Throttle) Flush() {
	t.mu.Lock()
	if t.timer != nil {
		if !t.timer.Stop() {
			// Timer fired concurrently; fire() owns this execution.
			t.mu.Unlock()
			return
		}
		t.timer = nil
	}
	t.pending = false
	t.last = time.Now()
	t.mu.Unlock()

	t.fn()
}

// Stop cancels any pending execution without running it. Idempotent.
func (t *Throttle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.pending = false
}

// Pending reports whether a deferred execution is armed.
func (t *Throttle) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}
