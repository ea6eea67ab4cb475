// Package fileutil reads documents from disk with a size bound.
package fileutil

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/OleBialas/quarto-docker-render/internal/errors"
)

// DefaultMaxFileSize is the read limit used when none is configured (16MB).
const DefaultMaxFileSize int64 = 16 * 1024 * 1024

var (
	// ErrFileTooLarge indicates that a file exceeded the read limit.
	ErrFileTooLarge = errors.New("file exceeds maximum size")

	// ErrInvalidEncoding indicates that a file is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")
)

// utf8BOM is the byte order mark some editors write at the start of UTF-8 files.
const utf8BOM = "\xef\xbb\xbf"

// ReadText reads the whole file at path as UTF-8 text, without a leading
// byte order mark. A limit <= 0 means DefaultMaxFileSize.
func ReadText(path string, limit int64) (string, error) {
	data, err := ReadFileWithLimit(path, limit)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	return strings.TrimPrefix(string(data), utf8BOM), nil
}

// ReadFileWithLimit reads a file up to limit bytes.
// It returns ErrFileTooLarge if the file is larger than the limit.
// A limit <= 0 means DefaultMaxFileSize.
func ReadFileWithLimit(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast if the size is already known to be too large
	info, err := f.Stat()
	if err == nil {
		if info.IsDir() {
			return nil, errors.Newf("%s is a directory", path)
		}
		if info.Size() > limit {
			return nil, errors.Mark(errors.Newf("file exceeds maximum size (%d bytes, limit %d)", info.Size(), limit), ErrFileTooLarge)
		}
	}

	r := io.LimitReader(f, limit+1)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	if int64(len(data)) > limit {
		return nil, errors.Mark(errors.Newf("file exceeds maximum size (limit %d)", limit), ErrFileTooLarge)
	}

	return data, nil
}
