package ports

// ResolutionMetrics records per-request outcomes for the ops surface.
type ResolutionMetrics interface {
	RecordResolved(success bool)
	RecordConflict()
	RecordFailure()
}
