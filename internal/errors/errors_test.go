package errors

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  &ExitError{Err: ErrMissingPath, Code: ExitFailure},
			want: "Quarto file path argument missing",
		},
		{
			name: "with wrapped error",
			err:  &ExitError{Err: fmt.Errorf("loading config: %w", ErrInvalidConfig), Code: ExitFailure},
			want: "loading config: invalid configuration",
		},
		{
			name: "nil underlying error",
			err:  &ExitError{Code: ExitFailure},
			want: "exit code 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := NewUsageError(ErrMissingPath, "Usage: parse-yaml <file>")
	assert.True(t, Is(err, ErrMissingPath))
	assert.False(t, Is(err, ErrInvalidConfig))
	assert.Equal(t, KindUsage, err.Kind)
	assert.Equal(t, "Usage: parse-yaml <file>", err.Suggestion)
}

func TestNewProcessingError(t *testing.T) {
	_, statErr := os.Stat("/nonexistent/doc.qmd")
	require.Error(t, statErr)

	err := NewProcessingError("/nonexistent/doc.qmd", statErr)

	assert.Equal(t, ExitFailure, err.Code)
	assert.Equal(t, KindProcessing, err.Kind)
	assert.Contains(t, err.Error(), "Error processing file /nonexistent/doc.qmd: ")
	assert.True(t, Is(err, os.ErrNotExist), "underlying cause should remain inspectable")
}

func TestNewConfigError(t *testing.T) {
	err := NewConfigError(New("max_file_size must be > 0"))

	assert.Equal(t, ExitFailure, err.Code)
	assert.Equal(t, KindUsage, err.Kind)
	assert.True(t, Is(err, ErrInvalidConfig))
	assert.NotEmpty(t, err.Suggestion)
	assert.Equal(t, "max_file_size must be > 0", err.Error())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", New("boom"), ExitFailure},
		{"exit error", &ExitError{Err: New("custom"), Code: 3}, 3},
		{"wrapped exit error", Wrap(NewUsageError(ErrMissingPath, ""), "executing root command"), ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "usage", KindUsage.String())
	assert.Equal(t, "processing", KindProcessing.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
