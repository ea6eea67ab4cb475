package config

import (
	"github.com/cockroachdb/errors"

	"github.com/OleBialas/quarto-docker-render/internal/logging"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidMaxFileSize indicates max_file_size is not positive.
	ErrInvalidMaxFileSize = errors.New("max_file_size must be > 0")

	// ErrInvalidLogFormat indicates an unrecognized log_format.
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, errors.Mark(errors.Newf("unsupported config version: %d", cfg.Version), ErrUnsupportedVersion))
	}

	if cfg.MaxFileSize <= 0 {
		errs = append(errs, ErrInvalidMaxFileSize)
	}

	if _, ok := logging.ParseFormat(cfg.LogFormat); !ok {
		errs = append(errs, errors.Mark(errors.Newf("invalid log format: %q (valid: text, json)", cfg.LogFormat), ErrInvalidLogFormat))
	}

	return errs
}
