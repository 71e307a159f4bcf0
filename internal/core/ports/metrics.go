package ports

// Metrics counts index activity for the metrics endpoint. Implementations
// must be safe for concurrent use.
type Metrics interface {
	// EventProcessed counts one classified filesystem event by operation.
	EventProcessed(op string)

	// ScanCompleted counts one full library scan.
	ScanCompleted()

	// DiffPublished counts one non-empty reconcile broadcast.
	DiffPublished()

	// FlushFailed counts one failed index flush.
	FlushFailed()
}
