// Package linear provides a synchronous, line-buffered renderer for CI
// environments and pipes.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/tana/internal/core/domain"
	"go.trai.ch/tana/internal/ui/output"
)

// Renderer implements ports.Renderer for non-interactive environments.
// It prints chronological lines prefixed with the operation name.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	ops     map[string]*opState // spanID -> state
	buffers map[string]*bytes.Buffer
}

type opState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a linear Renderer writing to the given streams.
// Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	out := termenv.NewOutput(stderr, termenv.WithProfile(output.ColorProfileANSI()))

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  out,
		ops:     make(map[string]*opState),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// Start is a no-op; the linear renderer is synchronous.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes all remaining buffers.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}

	return nil
}

// Wait is a no-op; the linear renderer is synchronous.
func (r *Renderer) Wait() error {
	return nil
}

// OnWatchStart announces the watched root.
func (r *Renderer) OnWatchStart(root string, collections int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Watching %s (%d collections)\n", root, collections)
}

// OnOpStart prints an operation start line.
func (r *Renderer) OnOpStart(spanID, _ /* parentID */, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ops[spanID] = &opState{
		name:      name,
		startTime: startTime,
	}
	r.buffers[spanID] = new(bytes.Buffer)

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s started\n", prefix)
}

// OnOpLog buffers operation output and prints complete lines with the
// operation prefix.
func (r *Renderer) OnOpLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	op, ok := r.ops[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line, keep it for the next call.
			if len(line) > 0 {
				rest := new(bytes.Buffer)
				rest.Write(line)
				r.buffers[spanID] = rest
			}
			break
		}

		r.printLineLocked(op.name, line)
	}
}

// OnOpComplete flushes the operation's buffer and prints its outcome.
func (r *Renderer) OnOpComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	op, ok := r.ops[spanID]
	if !ok {
		return
	}

	r.flushBufferLocked(spanID)

	duration := endTime.Sub(op.startTime)
	prefix := fmt.Sprintf("[%s]", op.name)

	if err != nil {
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s failed after %v: %v\n",
			prefix, symbol, duration, err)
	} else {
		symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s done in %v\n",
			prefix, symbol, duration)
	}

	delete(r.ops, spanID)
	delete(r.buffers, spanID)
}

// OnLibraryChanged prints a one-line-per-change summary of the diff.
func (r *Renderer) OnLibraryChanged(snap domain.Snapshot, diff domain.Diff) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range diff.AddedCollections {
		chapters := 0
		if rec, ok := snap[id]; ok {
			chapters = rec.TotalChapters
		}
		symbol := r.output.String("+").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stdout, "%s collection %s (%d chapters)\n", symbol, id, chapters)
	}
	for _, id := range diff.RemovedCollections {
		symbol := r.output.String("-").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stdout, "%s collection %s\n", symbol, id)
	}
	for id, ch := range diff.Chapters {
		for _, name := range ch.Added {
			symbol := r.output.String("+").Foreground(termenv.ANSIGreen).String()
			_, _ = fmt.Fprintf(r.stdout, "%s %s/%s\n", symbol, id, name)
		}
		for _, name := range ch.Removed {
			symbol := r.output.String("-").Foreground(termenv.ANSIRed).String()
			_, _ = fmt.Fprintf(r.stdout, "%s %s/%s\n", symbol, id, name)
		}
	}

	_, _ = fmt.Fprintf(r.stderr, "Library now has %d collections, %d chapters\n",
		len(snap), snap.TotalChapters())
}

// flushBufferLocked prints any remaining partial line for an operation.
// Must be called with r.mu held.
func (r *Renderer) flushBufferLocked(spanID string) {
	op, ok := r.ops[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf.Len() > 0 {
		r.printLineLocked(op.name, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints a line with the operation name prefix.
// Must be called with r.mu held.
func (r *Renderer) printLineLocked(opName string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 {
		return
	}

	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", opName, string(line))
}
