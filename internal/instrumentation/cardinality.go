package instrumentation

// Cardinality management helpers for metrics and span attributes.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with user-supplied values.

// maxFilterAttrLen caps filter expressions recorded on spans. Filters contain
// free search text and can be arbitrarily long.
const maxFilterAttrLen = 128

// TruncateFilter shortens a filter expression for use as a span attribute.
// Filters are never used as metric labels; they only appear on sampled traces.
func TruncateFilter(filter string) string {
	if len(filter) <= maxFilterAttrLen {
		return filter
	}
	return filter[:maxFilterAttrLen] + "..."
}

// Common operation types for Todoist API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationList     = "list"
	OperationCreate   = "create"
	OperationUpdate   = "update"
	OperationComplete = "complete"
	OperationDelete   = "delete"
	OperationProjects = "projects"
)
