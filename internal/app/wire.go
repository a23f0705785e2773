package app

import (
	"fmt"

	"breathrate/internal/analysis"
	"breathrate/internal/domain"
	"breathrate/internal/export"
	"breathrate/internal/loader"
)

// Wire bundles the pipeline stages built from a Config.
type Wire struct {
	Loader    domain.SampleLoader
	Extractor *analysis.Extractor
	Writer    domain.RateWriter
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis parameters: %w", err)
	}
	return &Wire{
		Loader:    loader.NewFileLoader(cfg.InputPath, cfg.Zone),
		Extractor: analysis.NewExtractor(cfg.Params),
		Writer:    export.NewCSVFile(cfg.OutputPath),
	}, nil
}
