package shaders

import (
	"fmt"

	"github.com/glintgl/glint/lib/gfx"
)

// ShaderCompileError carries the compiler diagnostic log for one shader.
// A failed compile never yields a shader handle.
type ShaderCompileError struct {
	Kind gfx.Enum
	Log  string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", KindName(e.Kind), e.Log)
}

// LinkError carries the linker diagnostic log.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// KindName names a shader kind enum for diagnostics.
func KindName(kind gfx.Enum) string {
	switch kind {
	case gfx.VERTEX_SHADER:
		return "vertex"
	case gfx.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("%#x", uint32(kind))
}
