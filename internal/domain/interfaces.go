package domain

// SampleLoader reads a recording into timed samples, one per record.
type SampleLoader interface {
	Load() ([]TimedSample, error)
}

// RateWriter persists the breathing-rate table.
type RateWriter interface {
	Write(records []BreathingRateRecord) (ExportSummary, error)
}
