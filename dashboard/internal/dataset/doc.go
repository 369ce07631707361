// Package dataset holds the dashboard's view of the collector output.
//
// Handle replaces an implicit process-wide cache with an explicit object
// passed to the HTTP handlers: Get loads the normalized table on first use,
// Invalidate drops it, and Watch ties invalidation to fsnotify events on the
// file. Stats exposes load and invalidation counts for /metrics and health.
package dataset
