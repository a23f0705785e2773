package analysis

import (
	"fmt"
	"time"
)

const (
	// DefaultHeightPercentile is the percentile of the whole clean RR
	// distribution a peak must reach. Lower values admit noise bumps.
	DefaultHeightPercentile = 60.0

	// DefaultMinPeakDistance is the minimum index distance between kept
	// peaks. It stops one broad maximum from being counted several times.
	DefaultMinPeakDistance = 5

	// DefaultMinInterval and DefaultMaxInterval bound a plausible breathing
	// cycle (30 and 6 breaths per minute). Both ends are inclusive.
	DefaultMinInterval = 2 * time.Second
	DefaultMaxInterval = 10 * time.Second
)

// Params are the tunables of the extractor.
type Params struct {
	HeightPercentile float64
	MinPeakDistance  int
	MinInterval      time.Duration
	MaxInterval      time.Duration
}

// DefaultParams returns the fixed parameter set used by the CLI.
func DefaultParams() Params {
	return Params{
		HeightPercentile: DefaultHeightPercentile,
		MinPeakDistance:  DefaultMinPeakDistance,
		MinInterval:      DefaultMinInterval,
		MaxInterval:      DefaultMaxInterval,
	}
}

func (p Params) Validate() error {
	if p.HeightPercentile < 0 || p.HeightPercentile > 100 {
		return fmt.Errorf("height percentile %v outside [0, 100]", p.HeightPercentile)
	}
	if p.MinPeakDistance < 1 {
		return fmt.Errorf("min peak distance %d must be >= 1", p.MinPeakDistance)
	}
	if p.MinInterval <= 0 {
		return fmt.Errorf("min interval %v must be positive", p.MinInterval)
	}
	if p.MinInterval > p.MaxInterval {
		return fmt.Errorf("min interval (%v) must be <= max interval (%v)",
			p.MinInterval, p.MaxInterval)
	}
	return nil
}
