// Package rendering holds the GL helper surface: context acquisition, buffer
// building, attribute binding, uniform setting and the frame painter. All
// helpers borrow the gfx.API and handles they are given; nothing in this
// package keeps hidden state beyond the Context's viewport size.
package rendering

import (
	"github.com/glintgl/glint/lib/gfx"
)

// Surface is one output target: a window or anything else that has a display
// size and a swap chain. Implemented by windowsink.
type Surface interface {
	Name() string
	DisplaySize() (int, int)
	SwapBuffers()
	PollEvents()
	ShouldClose() bool
}

// SurfaceProvider looks surfaces up by name.
type SurfaceProvider interface {
	Surface(name string) (Surface, error)
}

// Context pairs a gfx.API with the surface it draws to. It is owned by the
// render loop for its whole lifetime; nothing else may touch it.
type Context struct {
	API gfx.API

	surface Surface
	width   int
	height  int
}

// Acquire looks up the named surface and wraps it with the given API. Fails
// with ContextUnavailableError if the surface cannot be provided.
func Acquire(p SurfaceProvider, name string, api gfx.API) (*Context, error) {
	surface, err := p.Surface(name)
	if err != nil {
		return nil, &ContextUnavailableError{Surface: name, Err: err}
	}
	return &Context{API: api, surface: surface}, nil
}

func (c *Context) Surface() Surface {
	return c.surface
}

// ResizeToDisplay reapplies the viewport if the surface's display size has
// changed since the last call. Calling it again with an unchanged size does
// nothing. Reports whether the viewport was touched.
func (c *Context) ResizeToDisplay() bool {
	w, h := c.surface.DisplaySize()
	if w == c.width && h == c.height {
		return false
	}
	c.width = w
	c.height = h
	c.API.Viewport(0, 0, int32(w), int32(h))
	return true
}
