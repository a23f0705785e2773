package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout formats a BreathingRateRecord time of day.
const TimeLayout = "15:04:05"

// TimedSample is one input record reduced to the mean of its RR intervals.
// HasRR is false when the record carried no measurements; RRMean is then zero.
type TimedSample struct {
	Timestamp time.Time
	RRMean    float64
	HasRR     bool
}

// CleanSample is a TimedSample whose RR mean is present and positive.
type CleanSample struct {
	Timestamp time.Time
	RRMean    float64
}

// Peak is a local maximum of the clean RR signal.
// Index points into the clean-sample sequence it was detected in.
type Peak struct {
	Index     int
	Timestamp time.Time
	RRMean    float64
}

// BreathingRateRecord is one row of the output table.
type BreathingRateRecord struct {
	Time string          // wall-clock HH:MM:SS in the display zone
	BPM  decimal.Decimal // breaths per minute, one decimal place

	// At is the instant of the peak closing the breathing cycle. Not exported to CSV.
	At time.Time
}
