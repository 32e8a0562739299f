package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
)

// Handler is a slog.Handler that prints compact coloured lines and renders
// the "module" attribute as a prefix. Attribute parsing is delegated to an
// inner JSON handler so grouping and ReplaceAttr behave like stock slog.
type Handler struct {
	subHandler  slog.Handler
	out         io.Writer
	buffer      *bytes.Buffer
	bufferMutex *sync.Mutex
}

const (
	reset = "\033[0m"

	lightGray   = 37
	darkGray    = 90
	lightRed    = 91
	lightYellow = 93
	cyan        = 36
)

func colorize(colorCode int, v string) string {
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(colorCode), v, reset)
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.subHandler.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{subHandler: h.subHandler.WithAttrs(attrs), out: h.out, buffer: h.buffer, bufferMutex: h.bufferMutex}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{subHandler: h.subHandler.WithGroup(name), out: h.out, buffer: h.buffer, bufferMutex: h.bufferMutex}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + " "

	switch r.Level {
	case slog.LevelDebug:
		level = colorize(darkGray, level)
	case slog.LevelInfo:
		level = colorize(cyan, level)
	case slog.LevelWarn:
		level = colorize(lightYellow, level)
	case slog.LevelError:
		level = colorize(lightRed, level)
	}

	attrs, err := h.parseAttributes(ctx, r)
	if err != nil {
		return err
	}

	fmt.Fprint(h.out, colorize(lightGray, r.Time.Format("15:04:05.000 ")))
	fmt.Fprint(h.out, level)
	if attrs["module"] != nil {
		fmt.Fprint(h.out, colorize(lightGray, fmt.Sprintf("[%s] ", attrs["module"])))
	}
	fmt.Fprintln(h.out, r.Message)
	return nil
}

func (h *Handler) parseAttributes(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.bufferMutex.Lock()
	defer func() {
		h.buffer.Reset()
		h.bufferMutex.Unlock()
	}()
	if err := h.subHandler.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any
	err := json.Unmarshal(h.buffer.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}
	return attrs, nil
}

func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	b := &bytes.Buffer{}
	return &Handler{
		out:    out,
		buffer: b,
		subHandler: slog.NewJSONHandler(b, &slog.HandlerOptions{
			Level:       opts.Level,
			AddSource:   opts.AddSource,
			ReplaceAttr: opts.ReplaceAttr,
		}),
		bufferMutex: &sync.Mutex{},
	}
}

// Setup installs the coloured handler as the default slog logger.
func Setup(level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}

// With returns the default logger tagged with a module name.
func With(module string) *slog.Logger {
	return slog.Default().With("module", module)
}
