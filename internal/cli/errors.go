package cli

import (
	"errors"

	"github.com/specialistvlad/eectag/internal/tag"
)

// Process exit codes, one per error kind.
const (
	ExitSuccess       = 0
	ExitInternal      = 1
	ExitArgument      = 2
	ExitConfiguration = 3
	ExitStorage       = 4
	ExitSerialization = 5
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the classified error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the process exit code for its kind.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, tag.ErrArgument):
		return ExitArgument
	case errors.Is(err, tag.ErrConfiguration):
		return ExitConfiguration
	case errors.Is(err, tag.ErrStorage):
		return ExitStorage
	case errors.Is(err, tag.ErrSerialization):
		return ExitSerialization
	default:
		return ExitInternal
	}
}

// NewExitError wraps err in an ExitError carrying its exit code. It returns
// nil for a nil error and err itself if it already is an ExitError.
func NewExitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: ExitCode(err), Message: "Error: " + err.Error(), Err: err}
}
