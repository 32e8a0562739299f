package rendering_test

import (
	"fmt"

	"github.com/glintgl/glint/lib/gfx"
	"github.com/glintgl/glint/lib/rendering"
)

func program(v uint32) gfx.Program {
	return gfx.Program{V: v}
}

// fakeSurface is a Surface whose display size the tests control directly.
// closeAfter < 0 means never ask to close.
type fakeSurface struct {
	name       string
	width      int
	height     int
	closeAfter int
	swaps      int
	polls      int
}

func newFakeSurface(name string, w, h int) *fakeSurface {
	return &fakeSurface{name: name, width: w, height: h, closeAfter: -1}
}

func (s *fakeSurface) Name() string            { return s.name }
func (s *fakeSurface) DisplaySize() (int, int) { return s.width, s.height }
func (s *fakeSurface) SwapBuffers()            { s.swaps++ }
func (s *fakeSurface) PollEvents()             { s.polls++ }

func (s *fakeSurface) ShouldClose() bool {
	return s.closeAfter >= 0 && s.swaps >= s.closeAfter
}

type fakeProvider map[string]*fakeSurface

func (p fakeProvider) Surface(name string) (rendering.Surface, error) {
	s, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("no such surface: %s", name)
	}
	return s, nil
}
