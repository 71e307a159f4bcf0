package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/tana/internal/core/ports"
)

// TracerName is the instrumentation scope for all tana spans.
const TracerName = "go.trai.ch/tana"

// Provider owns the tracer provider whose only processor is the renderer
// bridge. Spans never leave the process.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider creates a Provider that feeds spans to the given renderer.
func NewProvider(renderer ports.Renderer) *Provider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(renderer)),
	)
	return &Provider{tp: tp}
}

// Tracer returns the tracer used by the index engine.
func (p *Provider) Tracer() trace.Tracer {
	return p.tp.Tracer(TracerName)
}

// Shutdown flushes and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
