package rendering

import (
	"github.com/glintgl/glint/lib/gfx"
)

// AttribLayout describes the per-vertex layout of one attribute. The zero
// value means tightly packed float32 components.
type AttribLayout struct {
	Type       gfx.Enum // zero means gfx.FLOAT
	Normalized bool
	Stride     int32
	Offset     int32
}

// BindAttribute resolves name on program, binds buf as the active vertex
// source and configures the slot. A name that does not resolve fails with
// AttributeNotFoundError before anything is configured.
func BindAttribute(api gfx.API, program gfx.Program, buf GpuBuffer, name string, size int32, layout AttribLayout) error {
	if buf.role != VertexRole {
		return &BufferRoleError{Want: VertexRole, Got: buf.role}
	}

	attrib := api.GetAttribLocation(program, name)
	if !attrib.Valid() {
		return &AttributeNotFoundError{Name: name}
	}

	ty := layout.Type
	if ty == 0 {
		ty = gfx.FLOAT
	}

	api.BindBuffer(gfx.ARRAY_BUFFER, buf.handle)
	api.EnableVertexAttribArray(attrib)
	api.VertexAttribPointer(attrib, size, ty, layout.Normalized, layout.Stride, layout.Offset)
	return nil
}
