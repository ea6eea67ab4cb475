// Package errors provides error handling conventions for parse-yaml.
//
// It re-exports the constructors and inspectors of
// github.com/cockroachdb/errors so callers import a single errors package,
// and adds an ExitError type that carries a process exit code.
//
// # Exit Codes
//
//   - ExitSuccess (0): the document was processed, whether or not a docker
//     block was found
//   - ExitFailure (1): usage error or processing error
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and an optional
// suggestion. It supports [errors.Is] and [errors.As]:
//
//	err := errors.NewUsageError(errors.ErrMissingPath, "Usage: parse-yaml <file>")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
