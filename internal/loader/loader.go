package loader

import (
	"errors"
	"fmt"
	"os"
	"time"

	"breathrate/internal/domain"
)

// DefaultInputPath is the session log read when no input is given.
const DefaultInputPath = "H10_log_20250611_2133.json"

// FileLoader loads a sensor log from disk.
type FileLoader struct {
	path string
	zone *time.Location
}

// NewFileLoader returns a loader for path presenting timestamps in zone.
// An empty path selects DefaultInputPath and a nil zone selects UTC.
func NewFileLoader(path string, zone *time.Location) *FileLoader {
	if path == "" {
		path = DefaultInputPath
	}
	if zone == nil {
		zone = time.UTC
	}
	return &FileLoader{path: path, zone: zone}
}

// Path returns the file this loader reads.
func (l *FileLoader) Path() string { return l.path }

// Load reads and decodes the whole log. A missing file is reported as
// *domain.MissingInputError, anything else unreadable or malformed as
// *domain.LoadError; no samples are returned on failure.
func (l *FileLoader) Load() ([]domain.TimedSample, error) {
	b, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &domain.MissingInputError{Path: l.path}
	}
	if err != nil {
		return nil, &domain.LoadError{Path: l.path, Err: err}
	}

	doc, err := decodeDocument(formatOf(l.path), b)
	if err != nil {
		return nil, &domain.LoadError{Path: l.path, Err: fmt.Errorf("parse: %w", err)}
	}
	samples, err := toSamples(doc, l.zone)
	if err != nil {
		return nil, &domain.LoadError{Path: l.path, Err: err}
	}
	return samples, nil
}
