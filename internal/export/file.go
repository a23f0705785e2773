package export

import (
	"bytes"
	"fmt"

	"breathrate/internal/digest"
	"breathrate/internal/domain"
)

const (
	// DefaultOutputPath is written when no output is given.
	DefaultOutputPath = "breathing_rate_output.csv"

	// PreviewRows is how many leading rows an ExportSummary carries.
	PreviewRows = 10
)

// CSVFile writes the rate table to a single file.
type CSVFile struct {
	path string
}

// NewCSVFile returns a writer for path; empty selects DefaultOutputPath.
func NewCSVFile(path string) *CSVFile {
	if path == "" {
		path = DefaultOutputPath
	}
	return &CSVFile{path: path}
}

// Path returns the file this writer replaces.
func (f *CSVFile) Path() string { return f.path }

// Write sorts records chronologically and replaces the file with the table.
// An empty slice still produces a header-only file.
func (f *CSVFile) Write(records []domain.BreathingRateRecord) (domain.ExportSummary, error) {
	sorted := Sort(records)

	var buf bytes.Buffer
	if err := Encode(&buf, sorted); err != nil {
		return domain.ExportSummary{}, fmt.Errorf("encode %q: %w", f.path, err)
	}
	if err := writeFile(f.path, buf.Bytes(), 0o644); err != nil {
		return domain.ExportSummary{}, fmt.Errorf("write %q: %w", f.path, err)
	}

	return domain.ExportSummary{
		Path:    f.path,
		Records: len(sorted),
		Preview: sorted[:min(len(sorted), PreviewRows)],
		Digest:  digest.Fingerprint(buf.Bytes()),
	}, nil
}
