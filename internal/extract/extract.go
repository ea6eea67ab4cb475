// Package extract reads a document and reports the docker configuration in
// its front matter.
package extract

import (
	"context"
	"log/slog"

	"github.com/OleBialas/quarto-docker-render/internal/docker"
	"github.com/OleBialas/quarto-docker-render/internal/errors"
	"github.com/OleBialas/quarto-docker-render/internal/logging"
	"github.com/OleBialas/quarto-docker-render/pkg/fileutil"
	"github.com/OleBialas/quarto-docker-render/pkg/frontmatter"
)

// Result is the outcome of a successful run.
type Result struct {
	// Path is the document that was read.
	Path string
	// HasFrontMatter reports whether the document starts with a front matter block.
	HasFrontMatter bool
	// Docker is the docker block, nil when the front matter has none.
	Docker *docker.Config
}

// Lines returns the output lines for r.
func (r *Result) Lines() docker.Lines {
	if r == nil {
		return nil
	}
	return r.Docker.Lines()
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxFileSize limits how many bytes of a document are read.
// Values <= 0 select fileutil.DefaultMaxFileSize.
func WithMaxFileSize(n int64) Option {
	return func(e *Extractor) {
		e.maxFileSize = n
	}
}

// WithLogger sets the logger used when the context carries none.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = l
	}
}

// Extractor reads documents and decodes their docker block.
type Extractor struct {
	maxFileSize int64
	logger      *slog.Logger
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run reads the document at path and returns its docker configuration.
//
// A document without front matter, or whose front matter has no docker
// mapping, is a successful run with no lines. An empty path is a usage
// error; an unreadable file or malformed YAML is a processing error.
func (e *Extractor) Run(ctx context.Context, path string) (*Result, error) {
	if path == "" {
		return nil, errors.NewUsageError(errors.ErrMissingPath, "Usage: parse-yaml <file>")
	}

	logger := e.logger
	if ctxLogger := logging.FromContext(ctx); ctxLogger != nil {
		logger = ctxLogger
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	logger = logger.With("path", path)

	if err := ctx.Err(); err != nil {
		return nil, errors.NewProcessingError(path, err)
	}

	content, err := fileutil.ReadText(path, e.maxFileSize)
	if err != nil {
		return nil, errors.NewProcessingError(path, err)
	}
	logger.Log(ctx, logging.LevelTrace, "read document", "bytes", len(content))

	if err := ctx.Err(); err != nil {
		return nil, errors.NewProcessingError(path, err)
	}

	result := &Result{Path: path}

	fm, found, err := frontmatter.Parse(content)
	if err != nil {
		return nil, errors.NewProcessingError(path, err)
	}
	if !found {
		logger.Debug("no front matter found")
		return result, nil
	}
	result.HasFrontMatter = true

	cfg, ok := docker.FromFrontMatter(fm)
	if !ok {
		logger.Debug("no docker block in front matter")
		return result, nil
	}
	result.Docker = cfg

	if !cfg.HasImage() {
		logger.Info("docker block has no usable image")
	}
	logger.Debug("docker block found", "image", cfg.Image, "options", len(cfg.Options))

	return result, nil
}
