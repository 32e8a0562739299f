package kbdctl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glintgl/glint/lib/sink/windowsink"
)

// Controls is what the shortcuts operate on. The viewer implements it.
type Controls interface {
	RequestShutdown()
	RequestShaderReload()
	TogglePause()
}

func SetupShortcutKeys(c Controls, ws *windowsink.WindowSink) {
	ws.Window.SetKeyCallback(keyCallback(c))
}

func keyCallback(c Controls) func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			if key == glfw.KeyQ &&
				mods&glfw.ModControl != 0 &&
				mods&glfw.ModShift != 0 {
				slog.Info("told to quit, exiting")
				c.RequestShutdown()
			}
		}
		if action == glfw.Press {
			switch key {
			case glfw.KeyEscape:
				c.RequestShutdown()
			case glfw.KeyR:
				slog.Info("shader reload requested")
				c.RequestShaderReload()
			case glfw.KeySpace:
				c.TogglePause()
			}
		}
	}
}
