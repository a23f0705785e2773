package commands

import (
	"errors"

	"breathrate/internal/domain"
)

const (
	exitFailure      = 1
	exitMissingInput = 2
	exitLoadError    = 3
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	var missing *domain.MissingInputError
	var load *domain.LoadError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &missing):
		return exitMissingInput
	case errors.As(err, &load):
		return exitLoadError
	default:
		return exitFailure
	}
}
