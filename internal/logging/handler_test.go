package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(h)

	now := time.Now()
	logger.Info("docker block found", "image", "myimg")

	output := buf.String()
	assert.Contains(t, output, "INFO")
	assert.Contains(t, output, "docker block found")
	assert.Contains(t, output, "image=myimg")
	assert.True(t, strings.HasSuffix(output, "\n"))

	// Kitchen format; allow for a minute rollover between now and the log call
	assert.True(t,
		strings.Contains(output, now.Format(time.Kitchen)) ||
			strings.Contains(output, now.Add(time.Minute).Format(time.Kitchen)),
		"expected kitchen time in output, got %q", output)
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("path", "doc.qmd")

	logger.Info("message", "local", "val")

	output := buf.String()
	assert.Contains(t, output, "path=doc.qmd")
	assert.Contains(t, output, "local=val")
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).WithGroup("docker").With("image", "myimg")

	logger.Info("message", "options", 2, slog.Group("limits", "bytes", 10))

	output := buf.String()
	assert.Contains(t, output, "docker.image=myimg")
	assert.Contains(t, output, "docker.options=2")
	assert.Contains(t, output, "docker.limits.bytes=10")
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := t.Context()
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestHandler_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	logger.Log(t.Context(), LevelTrace, "read document")

	assert.Contains(t, buf.String(), "TRACE")
	assert.NotContains(t, buf.String(), "DEBUG-4")
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no time", 0)
	require.NoError(t, h.Handle(t.Context(), r))

	assert.Equal(t, "INFO  no time\n", buf.String())
}
