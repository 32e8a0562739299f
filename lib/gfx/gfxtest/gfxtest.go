// Package gfxtest is a recording gfx.API backend for tests. It hands out
// handles, remembers every call and can be scripted to fail compilation or
// linking with a canned info log.
package gfxtest

import (
	"fmt"

	"github.com/glintgl/glint/lib/gfx"
)

type DrawCall struct {
	Mode   gfx.Enum
	Count  int32
	Type   gfx.Enum
	Offset int32
}

type UniformWrite struct {
	Loc    int32
	Values []float32
}

type BufferUpload struct {
	Target  gfx.Enum
	Usage   gfx.Enum
	Floats  []float32
	Indices []uint16
}

type Backend struct {
	// Calls is the method names in invocation order.
	Calls []string

	// CompileErr maps a shader kind to an info log; a non-empty entry makes
	// compilation of that kind fail. LinkErr does the same for linking.
	CompileErr map[gfx.Enum]string
	LinkErr    string

	// AttribLocs and UniformLocs are the names resolvable on any program.
	// Missing names resolve to -1, like GL.
	AttribLocs  map[string]int32
	UniformLocs map[string]int32

	Draws           []DrawCall
	Uniforms        []UniformWrite
	Uploads         []BufferUpload
	Viewports       [][4]int32
	ClearColours    [][4]float32
	Clears          []gfx.Enum
	UsedPrograms    []gfx.Program
	EnabledAttribs  []gfx.Attrib
	AttribPointers  []string
	BoundBuffers    []gfx.Buffer
	DeletedShaders  []gfx.Shader
	DeletedPrograms []gfx.Program
	DeletedBuffers  []gfx.Buffer

	nextHandle  uint32
	shaderKinds map[uint32]gfx.Enum
}

func New() *Backend {
	return &Backend{
		CompileErr:  make(map[gfx.Enum]string),
		AttribLocs:  make(map[string]int32),
		UniformLocs: make(map[string]int32),
		shaderKinds: make(map[uint32]gfx.Enum),
	}
}

// CallCount reports how many recorded calls match name.
func (b *Backend) CallCount(name string) int {
	n := 0
	for _, c := range b.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (b *Backend) record(name string) {
	b.Calls = append(b.Calls, name)
}

func (b *Backend) handle() uint32 {
	b.nextHandle++
	return b.nextHandle
}

func (b *Backend) Version() string {
	b.record("Version")
	return "gfxtest 0.0"
}

func (b *Backend) CreateShader(kind gfx.Enum) gfx.Shader {
	b.record("CreateShader")
	s := gfx.Shader{V: b.handle()}
	b.shaderKinds[s.V] = kind
	return s
}

func (b *Backend) ShaderSource(s gfx.Shader, src string) {
	b.record("ShaderSource")
}

func (b *Backend) CompileShader(s gfx.Shader) {
	b.record("CompileShader")
}

func (b *Backend) GetShaderi(s gfx.Shader, pname gfx.Enum) int {
	b.record("GetShaderi")
	if pname == gfx.COMPILE_STATUS {
		if b.CompileErr[b.shaderKinds[s.V]] != "" {
			return gfx.FALSE
		}
		return gfx.TRUE
	}
	return 0
}

func (b *Backend) GetShaderInfoLog(s gfx.Shader) string {
	b.record("GetShaderInfoLog")
	return b.CompileErr[b.shaderKinds[s.V]]
}

func (b *Backend) DeleteShader(s gfx.Shader) {
	b.record("DeleteShader")
	b.DeletedShaders = append(b.DeletedShaders, s)
}

func (b *Backend) CreateProgram() gfx.Program {
	b.record("CreateProgram")
	return gfx.Program{V: b.handle()}
}

func (b *Backend) AttachShader(p gfx.Program, s gfx.Shader) {
	b.record("AttachShader")
}

func (b *Backend) LinkProgram(p gfx.Program) {
	b.record("LinkProgram")
}

func (b *Backend) GetProgrami(p gfx.Program, pname gfx.Enum) int {
	b.record("GetProgrami")
	if pname == gfx.LINK_STATUS {
		if b.LinkErr != "" {
			return gfx.FALSE
		}
		return gfx.TRUE
	}
	return 0
}

func (b *Backend) GetProgramInfoLog(p gfx.Program) string {
	b.record("GetProgramInfoLog")
	return b.LinkErr
}

func (b *Backend) DeleteProgram(p gfx.Program) {
	b.record("DeleteProgram")
	b.DeletedPrograms = append(b.DeletedPrograms, p)
}

func (b *Backend) UseProgram(p gfx.Program) {
	b.record("UseProgram")
	b.UsedPrograms = append(b.UsedPrograms, p)
}

func (b *Backend) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	b.record("GetAttribLocation")
	if loc, ok := b.AttribLocs[name]; ok {
		return gfx.Attrib{V: loc}
	}
	return gfx.Attrib{V: -1}
}

func (b *Backend) EnableVertexAttribArray(a gfx.Attrib) {
	b.record("EnableVertexAttribArray")
	b.EnabledAttribs = append(b.EnabledAttribs, a)
}

func (b *Backend) VertexAttribPointer(a gfx.Attrib, size int32, ty gfx.Enum, normalized bool, stride, offset int32) {
	b.record("VertexAttribPointer")
	b.AttribPointers = append(b.AttribPointers,
		fmt.Sprintf("loc=%d size=%d type=%#x norm=%v stride=%d offset=%d", a.V, size, ty, normalized, stride, offset))
}

func (b *Backend) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	b.record("GetUniformLocation")
	if loc, ok := b.UniformLocs[name]; ok {
		return gfx.Uniform{V: loc}
	}
	return gfx.Uniform{V: -1}
}

func (b *Backend) uniform(u gfx.Uniform, values ...float32) {
	b.Uniforms = append(b.Uniforms, UniformWrite{Loc: u.V, Values: values})
}

func (b *Backend) Uniform1f(u gfx.Uniform, v float32) {
	b.record("Uniform1f")
	b.uniform(u, v)
}

func (b *Backend) Uniform2f(u gfx.Uniform, v0, v1 float32) {
	b.record("Uniform2f")
	b.uniform(u, v0, v1)
}

func (b *Backend) Uniform3f(u gfx.Uniform, v0, v1, v2 float32) {
	b.record("Uniform3f")
	b.uniform(u, v0, v1, v2)
}

func (b *Backend) Uniform4f(u gfx.Uniform, v0, v1, v2, v3 float32) {
	b.record("Uniform4f")
	b.uniform(u, v0, v1, v2, v3)
}

func (b *Backend) UniformMatrix4fv(u gfx.Uniform, values [16]float32) {
	b.record("UniformMatrix4fv")
	b.uniform(u, values[:]...)
}

func (b *Backend) CreateBuffer() gfx.Buffer {
	b.record("CreateBuffer")
	return gfx.Buffer{V: b.handle()}
}

func (b *Backend) BindBuffer(target gfx.Enum, buf gfx.Buffer) {
	b.record("BindBuffer")
	b.BoundBuffers = append(b.BoundBuffers, buf)
}

func (b *Backend) BufferDataFloat32(target gfx.Enum, data []float32, usage gfx.Enum) {
	b.record("BufferDataFloat32")
	b.Uploads = append(b.Uploads, BufferUpload{Target: target, Usage: usage, Floats: data})
}

func (b *Backend) BufferDataUint16(target gfx.Enum, data []uint16, usage gfx.Enum) {
	b.record("BufferDataUint16")
	b.Uploads = append(b.Uploads, BufferUpload{Target: target, Usage: usage, Indices: data})
}

func (b *Backend) DeleteBuffer(buf gfx.Buffer) {
	b.record("DeleteBuffer")
	b.DeletedBuffers = append(b.DeletedBuffers, buf)
}

func (b *Backend) CreateVertexArray() gfx.VertexArray {
	b.record("CreateVertexArray")
	return gfx.VertexArray{V: b.handle()}
}

func (b *Backend) BindVertexArray(a gfx.VertexArray) {
	b.record("BindVertexArray")
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	b.record("ClearColor")
	b.ClearColours = append(b.ClearColours, [4]float32{r, g, bl, a})
}

func (b *Backend) Clear(mask gfx.Enum) {
	b.record("Clear")
	b.Clears = append(b.Clears, mask)
}

func (b *Backend) Viewport(x, y, width, height int32) {
	b.record("Viewport")
	b.Viewports = append(b.Viewports, [4]int32{x, y, width, height})
}

func (b *Backend) DrawElements(mode gfx.Enum, count int32, ty gfx.Enum, offset int32) {
	b.record("DrawElements")
	b.Draws = append(b.Draws, DrawCall{Mode: mode, Count: count, Type: ty, Offset: offset})
}
