package cli

import (
	"errors"

	"github.com/thenoetrevino/techradar/internal/dataset"
	"github.com/thenoetrevino/techradar/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: store errors, I/O errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, missing or malformed ids.
	ExitUsage = 2

	// ExitNotFound indicates a requested record was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: dataset files that fail to parse or fail integrity checks.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: out of range quadrant/ring, bad URLs, bad colors, empty names.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command. The message
// has already been shown to the user when it is returned.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCodeFor classifies an error into one of the exit codes.
func ExitCodeFor(err error) int {
	var coded *ExitCodeError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &coded):
		return coded.Code
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, dataset.ErrIntegrity):
		return ExitDataErr
	case errors.Is(err, models.ErrInvalidInput):
		return ExitValidation
	default:
		return ExitError
	}
}

// errorCode is the machine-readable code shown in JSON error output.
func errorCode(exitCode int) string {
	switch exitCode {
	case ExitUsage:
		return "USAGE"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}
