package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerRendersModulePrefix(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, nil))

	logger.Info("window opened", "module", "windowsink")

	line := out.String()
	assert.Contains(t, line, "window opened")
	assert.Contains(t, line, "[windowsink]")
	assert.Contains(t, line, "INFO")
}

func TestHandlerWithoutModule(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, nil))

	logger.Warn("something odd")

	line := out.String()
	assert.Contains(t, line, "something odd")
	assert.NotContains(t, line, "]")
}

func TestHandlerRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Debug("hidden")
	require.Empty(t, out.String())

	logger.Error("visible")
	assert.Contains(t, out.String(), "visible")
}

func TestWithTagsTheModule(t *testing.T) {
	var out bytes.Buffer
	slog.SetDefault(slog.New(NewHandler(&out, nil)))

	With("viewer").Info("hello")
	assert.Contains(t, out.String(), "[viewer]")
}
