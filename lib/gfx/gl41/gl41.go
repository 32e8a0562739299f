// Package gl41 implements gfx.API on top of an OpenGL 4.1 core context.
package gl41

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/glintgl/glint/lib/gfx"
)

type Backend struct{}

// New loads the GL function pointers for the current context. The context
// must already be current on the calling thread.
func New() (*Backend, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("could not initialise OpenGL context: %w", err)
	}
	return &Backend{}, nil
}

func (b *Backend) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (b *Backend) CreateShader(kind gfx.Enum) gfx.Shader {
	return gfx.Shader{V: gl.CreateShader(uint32(kind))}
}

func (b *Backend) ShaderSource(s gfx.Shader, src string) {
	csources, free := gl.Strs(src)
	size := int32(len(src))
	gl.ShaderSource(s.V, 1, csources, &size)
	free()
}

func (b *Backend) CompileShader(s gfx.Shader) {
	gl.CompileShader(s.V)
}

func (b *Backend) GetShaderi(s gfx.Shader, pname gfx.Enum) int {
	var v int32
	gl.GetShaderiv(s.V, uint32(pname), &v)
	return int(v)
}

func (b *Backend) GetShaderInfoLog(s gfx.Shader) string {
	var logLength int32
	gl.GetShaderiv(s.V, gl.INFO_LOG_LENGTH, &logLength)

	clog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(s.V, logLength, nil, gl.Str(clog))
	return strings.TrimRight(clog, "\x00")
}

func (b *Backend) DeleteShader(s gfx.Shader) {
	gl.DeleteShader(s.V)
}

func (b *Backend) CreateProgram() gfx.Program {
	return gfx.Program{V: gl.CreateProgram()}
}

func (b *Backend) AttachShader(p gfx.Program, s gfx.Shader) {
	gl.AttachShader(p.V, s.V)
}

func (b *Backend) LinkProgram(p gfx.Program) {
	gl.LinkProgram(p.V)
}

func (b *Backend) GetProgrami(p gfx.Program, pname gfx.Enum) int {
	var v int32
	gl.GetProgramiv(p.V, uint32(pname), &v)
	return int(v)
}

func (b *Backend) GetProgramInfoLog(p gfx.Program) string {
	var logLength int32
	gl.GetProgramiv(p.V, gl.INFO_LOG_LENGTH, &logLength)

	clog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(p.V, logLength, nil, gl.Str(clog))
	return strings.TrimRight(clog, "\x00")
}

func (b *Backend) DeleteProgram(p gfx.Program) {
	gl.DeleteProgram(p.V)
}

func (b *Backend) UseProgram(p gfx.Program) {
	gl.UseProgram(p.V)
}

func (b *Backend) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	return gfx.Attrib{V: gl.GetAttribLocation(p.V, gl.Str(name+"\x00"))}
}

func (b *Backend) EnableVertexAttribArray(a gfx.Attrib) {
	gl.EnableVertexAttribArray(uint32(a.V))
}

func (b *Backend) VertexAttribPointer(a gfx.Attrib, size int32, ty gfx.Enum, normalized bool, stride, offset int32) {
	gl.VertexAttribPointerWithOffset(uint32(a.V), size, uint32(ty), normalized, stride, uintptr(offset))
}

func (b *Backend) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	return gfx.Uniform{V: gl.GetUniformLocation(p.V, gl.Str(name+"\x00"))}
}

func (b *Backend) Uniform1f(u gfx.Uniform, v float32) {
	gl.Uniform1f(u.V, v)
}

func (b *Backend) Uniform2f(u gfx.Uniform, v0, v1 float32) {
	gl.Uniform2f(u.V, v0, v1)
}

func (b *Backend) Uniform3f(u gfx.Uniform, v0, v1, v2 float32) {
	gl.Uniform3f(u.V, v0, v1, v2)
}

func (b *Backend) Uniform4f(u gfx.Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(u.V, v0, v1, v2, v3)
}

func (b *Backend) UniformMatrix4fv(u gfx.Uniform, values [16]float32) {
	gl.UniformMatrix4fv(u.V, 1, false, &values[0])
}

func (b *Backend) CreateBuffer() gfx.Buffer {
	var v uint32
	gl.GenBuffers(1, &v)
	return gfx.Buffer{V: v}
}

func (b *Backend) BindBuffer(target gfx.Enum, buf gfx.Buffer) {
	gl.BindBuffer(uint32(target), buf.V)
}

const (
	sizeofFloat32 = 4
	sizeofUint16  = 2
)

func (b *Backend) BufferDataFloat32(target gfx.Enum, data []float32, usage gfx.Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data)*sizeofFloat32, gl.Ptr(data), uint32(usage))
}

func (b *Backend) BufferDataUint16(target gfx.Enum, data []uint16, usage gfx.Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data)*sizeofUint16, gl.Ptr(data), uint32(usage))
}

func (b *Backend) DeleteBuffer(buf gfx.Buffer) {
	gl.DeleteBuffers(1, &buf.V)
}

func (b *Backend) CreateVertexArray() gfx.VertexArray {
	var v uint32
	gl.GenVertexArrays(1, &v)
	return gfx.VertexArray{V: v}
}

func (b *Backend) BindVertexArray(a gfx.VertexArray) {
	gl.BindVertexArray(a.V)
}

func (b *Backend) ClearColor(r, g, bl, a float32) {
	gl.ClearColor(r, g, bl, a)
}

func (b *Backend) Clear(mask gfx.Enum) {
	gl.Clear(uint32(mask))
}

func (b *Backend) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (b *Backend) DrawElements(mode gfx.Enum, count int32, ty gfx.Enum, offset int32) {
	gl.DrawElementsWithOffset(uint32(mode), count, uint32(ty), uintptr(offset))
}
