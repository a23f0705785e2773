package domain

import "time"

// CleanStats describes what the cleaner saw and kept.
type CleanStats struct {
	Input    int       // samples read, including those without RR data
	First    time.Time // timestamp of the first input sample
	Last     time.Time // timestamp of the last input sample
	Retained int       // samples with a usable RR mean

	// OutOfOrder counts input samples stamped earlier than their predecessor.
	// They are kept where they are.
	OutOfOrder int
}

// ExtractStats summarises one rate extraction pass.
type ExtractStats struct {
	Threshold float64 // height threshold peaks had to reach
	Peaks     int
	Intervals int // consecutive peak pairs
	Valid     int // intervals inside the plausible band
	Filtered  int // intervals discarded as implausible

	// Only meaningful when Valid > 0.
	MeanBPM float64
	MinBPM  float64
	MaxBPM  float64
}

// ExportSummary describes a written output table.
type ExportSummary struct {
	Path    string
	Records int
	Preview []BreathingRateRecord // first rows in output order
	Digest  string                // fingerprint of the written bytes
}

// Report collects the diagnostics of a complete pipeline run.
type Report struct {
	Clean   CleanStats
	Extract ExtractStats
	Export  ExportSummary
}
