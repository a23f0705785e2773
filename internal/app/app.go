package app

import (
	"log/slog"

	"breathrate/internal/analysis"
	"breathrate/internal/domain"
)

// App runs the pipeline once over static input.
type App struct {
	w   *Wire
	log *slog.Logger
}

// New returns an App over w. A nil logger discards diagnostics.
func New(w *Wire, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &App{w: w, log: log}
}

// Run loads, cleans, extracts and exports. Load failures abort before
// anything is written; degenerate data completes with an empty table.
func (a *App) Run() (domain.Report, error) {
	var report domain.Report

	samples, err := a.w.Loader.Load()
	if err != nil {
		return report, err
	}
	a.log.Debug("loaded samples", "count", len(samples))

	clean, cs := analysis.Clean(samples)
	report.Clean = cs
	if cs.OutOfOrder > 0 {
		a.log.Warn("input is not chronological; samples kept in file order",
			"out_of_order", cs.OutOfOrder)
	}
	a.log.Debug("cleaned samples", "retained", cs.Retained, "dropped", cs.Input-cs.Retained)

	records, es := a.w.Extractor.Extract(clean)
	report.Extract = es
	a.log.Debug("extracted rates",
		"threshold", es.Threshold, "peaks", es.Peaks, "valid", es.Valid, "filtered", es.Filtered)

	summary, err := a.w.Writer.Write(records)
	if err != nil {
		return report, err
	}
	report.Export = summary
	a.log.Debug("wrote table", "path", summary.Path, "records", summary.Records, "digest", summary.Digest)
	return report, nil
}
