package metrics

import "github.com/prometheus/client_golang/prometheus"

// EventsCounter exposes one labeled event counter for tests.
func (r *Recorder) EventsCounter(op string) prometheus.Counter {
	return r.events.WithLabelValues(op)
}
