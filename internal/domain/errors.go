package domain

import (
	"errors"
	"fmt"
)

// MissingInputError reports an input path that does not exist.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input file %q not found", e.Path)
}

// LoadError reports an input that exists but could not be turned into samples.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Causes carried by LoadError.
var (
	ErrNotSequence      = errors.New("document is not a sequence of records")
	ErrNotRecord        = errors.New("record is not an object")
	ErrMissingTimestamp = errors.New("record has no ts field")
	ErrBadTimestamp     = errors.New("ts is not an epoch-seconds number")
	ErrBadInterval      = errors.New("rr holds a non-numeric measurement")
)
