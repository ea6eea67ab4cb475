package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates the document was processed.
	ExitSuccess = 0

	// ExitFailure indicates a usage or processing error.
	ExitFailure = 1
)

// Sentinel errors for common failure conditions.
var (
	// ErrMissingPath indicates the document path argument was not supplied.
	ErrMissingPath = crdb.New("Quarto file path argument missing")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")
)

// Re-exported from github.com/cockroachdb/errors.
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Mark  = crdb.Mark
	Is    = crdb.Is
	As    = crdb.As
)

// Kind distinguishes the two families of failure the CLI reports.
type Kind int

const (
	// KindUsage is a problem with how the command was invoked.
	KindUsage Kind = iota + 1
	// KindProcessing is a failure reading or parsing the document.
	KindProcessing
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindProcessing:
		return "processing"
	default:
		return "unknown"
	}
}

// ExitError wraps an error with an exit code and optional suggestion for the CLI.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Kind classifies the failure.
	Kind Kind

	// Suggestion is an optional actionable hint for the user.
	Suggestion string
}

// NewUsageError creates an ExitError for an invocation problem.
func NewUsageError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitFailure,
		Kind:       KindUsage,
		Suggestion: suggestion,
	}
}

// NewProcessingError creates an ExitError for a document that could not be
// read or parsed. The message names the document path.
func NewProcessingError(path string, err error) *ExitError {
	return &ExitError{
		Err:  crdb.Wrapf(err, "Error processing file %s", path),
		Code: ExitFailure,
		Kind: KindProcessing,
	}
}

// NewConfigError creates a usage ExitError for a bad configuration file.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        crdb.Mark(err, ErrInvalidConfig),
		Code:       ExitFailure,
		Kind:       KindUsage,
		Suggestion: "Check the file passed to --config or $QDR_* variables",
	}
}

// Error returns the message of the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err: ExitSuccess for nil, the code of
// the first ExitError in the chain, or ExitFailure otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
