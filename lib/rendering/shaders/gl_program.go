package shaders

import (
	"fmt"

	"github.com/glintgl/glint/lib/gfx"
	"github.com/glintgl/glint/lib/metrics"
)

// Compile builds one shader of the given kind from verbatim GLSL source.
// The source must carry its own #version header; no preprocessing or
// shorthand rewriting is applied. On failure the partial shader object is
// deleted and the compiler log is returned in a ShaderCompileError.
func Compile(api gfx.API, kind gfx.Enum, source string) (gfx.Shader, error) {
	shader := api.CreateShader(kind)
	api.ShaderSource(shader, source)
	api.CompileShader(shader)

	if api.GetShaderi(shader, gfx.COMPILE_STATUS) == gfx.FALSE {
		compileLog := api.GetShaderInfoLog(shader)
		api.DeleteShader(shader)
		return gfx.Shader{}, &ShaderCompileError{Kind: kind, Log: compileLog}
	}

	return shader, nil
}

// NewProgram compiles both shaders and links them into one program. Either
// the whole build succeeds and the program is usable, or an error is
// returned and every partially built object has been deleted; there is no
// partially-usable state.
func NewProgram(api gfx.API, vertexSource, fragmentSource string) (gfx.Program, error) {
	vertexShader, err := Compile(api, gfx.VERTEX_SHADER, vertexSource)
	if err != nil {
		metrics.ShaderBuildFailures.Inc()
		return gfx.Program{}, fmt.Errorf("could not compile vertex shader: %w", err)
	}

	fragmentShader, err := Compile(api, gfx.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		api.DeleteShader(vertexShader)
		metrics.ShaderBuildFailures.Inc()
		return gfx.Program{}, fmt.Errorf("could not compile fragment shader: %w", err)
	}

	program := api.CreateProgram()
	api.AttachShader(program, vertexShader)
	api.AttachShader(program, fragmentShader)
	api.LinkProgram(program)

	if api.GetProgrami(program, gfx.LINK_STATUS) == gfx.FALSE {
		linkLog := api.GetProgramInfoLog(program)
		api.DeleteProgram(program)
		api.DeleteShader(vertexShader)
		api.DeleteShader(fragmentShader)
		metrics.ShaderBuildFailures.Inc()
		return gfx.Program{}, &LinkError{Log: linkLog}
	}

	api.DeleteShader(vertexShader)
	api.DeleteShader(fragmentShader)

	metrics.ShaderBuilds.Inc()
	return program, nil
}
