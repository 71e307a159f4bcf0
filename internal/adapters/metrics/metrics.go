// Package metrics exposes index activity and library size to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/tana/internal/core/domain"
	"go.trai.ch/tana/internal/core/ports"
)

var _ ports.Metrics = (*Recorder)(nil)

// Recorder implements ports.Metrics with Prometheus counters.
type Recorder struct {
	events  *prometheus.CounterVec
	scans   prometheus.Counter
	diffs   prometheus.Counter
	flushes prometheus.Counter
}

// NewRecorder creates the counters. Register attaches them to a registry.
func NewRecorder() *Recorder {
	return &Recorder{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tana_watch_events_total",
			Help: "Classified filesystem events processed, by operation",
		}, []string{"op"}),
		scans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tana_scans_total",
			Help: "Full library scans completed",
		}),
		diffs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tana_diffs_published_total",
			Help: "Non-empty reconcile diffs broadcast to subscribers",
		}),
		flushes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tana_flush_errors_total",
			Help: "Failed index flushes",
		}),
	}
}

// Register attaches all counters to the given registry.
func (r *Recorder) Register(reg *prometheus.Registry) {
	reg.MustRegister(r.events, r.scans, r.diffs, r.flushes)
}

// EventProcessed counts one classified filesystem event.
func (r *Recorder) EventProcessed(op string) { r.events.WithLabelValues(op).Inc() }

// ScanCompleted counts one full library scan.
func (r *Recorder) ScanCompleted() { r.scans.Inc() }

// DiffPublished counts one broadcast diff.
func (r *Recorder) DiffPublished() { r.diffs.Inc() }

// FlushFailed counts one failed index flush.
func (r *Recorder) FlushFailed() { r.flushes.Inc() }

// LibraryCollector reports collection and chapter gauges straight off the
// store snapshot at scrape time.
type LibraryCollector struct {
	snapshot func() domain.Snapshot

	collections *prometheus.Desc
	chapters    *prometheus.Desc
}

var _ prometheus.Collector = (*LibraryCollector)(nil)

// NewLibraryCollector creates a collector over the given snapshot source.
func NewLibraryCollector(snapshot func() domain.Snapshot) *LibraryCollector {
	return &LibraryCollector{
		snapshot: snapshot,
		collections: prometheus.NewDesc(
			"tana_collections",
			"Number of indexed collections",
			nil, nil,
		),
		chapters: prometheus.NewDesc(
			"tana_chapters",
			"Number of indexed chapter archives across all collections",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *LibraryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.collections
	ch <- c.chapters
}

// Collect implements prometheus.Collector.
func (c *LibraryCollector) Collect(ch chan<- prometheus.Metric) {
	snap := c.snapshot()
	ch <- prometheus.MustNewConstMetric(c.collections, prometheus.GaugeValue, float64(len(snap)))
	ch <- prometheus.MustNewConstMetric(c.chapters, prometheus.GaugeValue, float64(snap.TotalChapters()))
}
