package windowsink

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glintgl/glint/lib/config"
	"github.com/glintgl/glint/lib/rendering"
)

// WindowSink is a GLFW window acting as the output surface. Start must run
// on the locked main thread before the GL backend is initialised.
type WindowSink struct {
	name string
	cfg  *config.WindowSinkCfg

	Window *glfw.Window

	log *slog.Logger
}

func New(name string, cfg *config.WindowSinkCfg) *WindowSink {
	return &WindowSink{
		name: name,
		cfg:  cfg,
		log:  slog.Default().With("module", "windowsink"),
	}
}

func (w *WindowSink) Start() error {
	if w.Window != nil {
		return nil
	}
	window, err := w.makeWindow()
	if err != nil {
		return err
	}
	w.Window = window
	return nil
}

func (w *WindowSink) makeWindow() (*glfw.Window, error) {
	w.log.Debug("Initializing window")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	title := w.cfg.Title
	if title == "" {
		title = w.name
	}
	window, err := glfw.CreateWindow(w.cfg.Width, w.cfg.Height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	window.MakeContextCurrent()
	if w.cfg.VsyncEnabled() {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return window, nil
}

func (w *WindowSink) Name() string {
	return w.name
}

func (w *WindowSink) DisplaySize() (int, int) {
	return w.Window.GetFramebufferSize()
}

func (w *WindowSink) SwapBuffers() {
	w.Window.SwapBuffers()
}

func (w *WindowSink) PollEvents() {
	glfw.PollEvents()
}

func (w *WindowSink) ShouldClose() bool {
	return w.Window.ShouldClose()
}

// Sinks is the named surface registry handed to rendering.Acquire.
type Sinks map[string]*WindowSink

func (s Sinks) Surface(name string) (rendering.Surface, error) {
	w, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("no such sink: %s", name)
	}
	if w.Window == nil {
		return nil, fmt.Errorf("sink %s has not been started", name)
	}
	return w, nil
}
