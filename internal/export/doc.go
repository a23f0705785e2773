// Package export writes breathing-rate records as a CSV table.
//
// Records are sorted by time of day (stable, so ties keep detection order)
// and written with a "time,bpm" header. The file is written to a temporary
// sibling and renamed into place, so a failed run never leaves a partial
// table behind.
package export
