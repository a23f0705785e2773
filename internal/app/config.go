package app

import (
	"fmt"
	"time"
	_ "time/tzdata" // display zone must resolve without host zoneinfo

	"breathrate/internal/analysis"
	"breathrate/internal/export"
	"breathrate/internal/loader"
)

// DisplayZone is the zone output times of day are written in (US/Pacific).
const DisplayZone = "America/Los_Angeles"

// Config holds runtime wiring options for building the pipeline.
type Config struct {
	InputPath  string         // sensor log, e.g. H10_log_20250611_2133.json
	OutputPath string         // CSV destination, replaced on success
	Zone       *time.Location // zone for HH:MM:SS output; durations ignore it
	Params     analysis.Params
}

// DefaultConfig returns the fixed configuration the CLI starts from.
func DefaultConfig() (Config, error) {
	zone, err := time.LoadLocation(DisplayZone)
	if err != nil {
		return Config{}, fmt.Errorf("load zone %q: %w", DisplayZone, err)
	}
	return Config{
		InputPath:  loader.DefaultInputPath,
		OutputPath: export.DefaultOutputPath,
		Zone:       zone,
		Params:     analysis.DefaultParams(),
	}, nil
}
