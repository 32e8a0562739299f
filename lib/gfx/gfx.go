// Package gfx is the narrow slice of the GL call surface that the rendering
// helpers actually use. The real implementation lives in gfx/gl41; tests use
// the recording backend in gfx/gfxtest.
package gfx

type Enum uint32

type (
	Shader      struct{ V uint32 }
	Program     struct{ V uint32 }
	Buffer      struct{ V uint32 }
	VertexArray struct{ V uint32 }
	Uniform     struct{ V int32 }
	Attrib      struct{ V int32 }
)

func (s Shader) Valid() bool {
	return s.V != 0
}

func (p Program) Valid() bool {
	return p.V != 0
}

func (b Buffer) Valid() bool {
	return b.V != 0
}

func (a VertexArray) Valid() bool {
	return a.V != 0
}

func (u Uniform) Valid() bool {
	return u.V != -1
}

func (a Attrib) Valid() bool {
	return a.V != -1
}

// API is the set of GL calls the helpers need. Handles are the small value
// types above; names are resolved to locations by the backend.
type API interface {
	Version() string

	CreateShader(kind Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	GetAttribLocation(p Program, name string) Attrib
	EnableVertexAttribArray(a Attrib)
	VertexAttribPointer(a Attrib, size int32, ty Enum, normalized bool, stride, offset int32)

	GetUniformLocation(p Program, name string) Uniform
	Uniform1f(u Uniform, v float32)
	Uniform2f(u Uniform, v0, v1 float32)
	Uniform3f(u Uniform, v0, v1, v2 float32)
	Uniform4f(u Uniform, v0, v1, v2, v3 float32)
	UniformMatrix4fv(u Uniform, values [16]float32)

	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferDataFloat32(target Enum, data []float32, usage Enum)
	BufferDataUint16(target Enum, data []uint16, usage Enum)
	DeleteBuffer(b Buffer)

	CreateVertexArray() VertexArray
	BindVertexArray(a VertexArray)

	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int32)
	DrawElements(mode Enum, count int32, ty Enum, offset int32)
}
