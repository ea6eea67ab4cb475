// Package logging provides structured logging for parse-yaml using slog.
//
// Logs are always written to stderr (or a log file), never to stdout, which
// carries only the IMAGE= and OPTION= lines consumed by the render script.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelDebug,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Debug("docker block found", "image", "rocker/verse")
//
// # Verbosity
//
// [LevelFromVerbosity] maps the count of -v flags to a level: none logs
// warnings only, -v adds info, -vv debug and -vvv [LevelTrace].
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework.
// Use [NewDiscard] when log output should be suppressed entirely.
package logging
