package rendering

import (
	"github.com/glintgl/glint/lib/gfx"
	"github.com/glintgl/glint/lib/metrics"
)

const (
	sizeofFloat32 = 4
	sizeofUint16  = 2
)

type BufferRole uint8

const (
	VertexRole BufferRole = iota
	IndexRole
)

func (r BufferRole) String() string {
	switch r {
	case VertexRole:
		return "vertex"
	case IndexRole:
		return "index"
	}
	return "unknown"
}

// Usage is the upload hint. The zero value is StaticDraw, so leaving it
// unspecified gets the static hint.
type Usage uint8

const (
	StaticDraw Usage = iota
	DynamicDraw
)

func (u Usage) glEnum() gfx.Enum {
	if u == DynamicDraw {
		return gfx.DYNAMIC_DRAW
	}
	return gfx.STATIC_DRAW
}

// GpuBuffer is a device buffer handle tagged with its role and the number of
// elements uploaded into it.
type GpuBuffer struct {
	handle gfx.Buffer
	role   BufferRole
	count  int
}

func (b GpuBuffer) Handle() gfx.Buffer { return b.handle }
func (b GpuBuffer) Role() BufferRole   { return b.role }
func (b GpuBuffer) Count() int         { return b.count }

// NewVertexBuffer uploads data into a fresh array buffer. Empty data is
// permitted and yields a zero-length buffer.
func NewVertexBuffer(api gfx.API, data []float32, usage Usage) GpuBuffer {
	b := api.CreateBuffer()
	api.BindBuffer(gfx.ARRAY_BUFFER, b)
	api.BufferDataFloat32(gfx.ARRAY_BUFFER, data, usage.glEnum())
	BufferUploadCounter += uint64(len(data) * sizeofFloat32)
	metrics.BufferUploadBytes.Add(float64(len(data) * sizeofFloat32))
	return GpuBuffer{handle: b, role: VertexRole, count: len(data)}
}

// NewIndexBuffer uploads data into a fresh element array buffer.
func NewIndexBuffer(api gfx.API, data []uint16, usage Usage) GpuBuffer {
	b := api.CreateBuffer()
	api.BindBuffer(gfx.ELEMENT_ARRAY_BUFFER, b)
	api.BufferDataUint16(gfx.ELEMENT_ARRAY_BUFFER, data, usage.glEnum())
	BufferUploadCounter += uint64(len(data) * sizeofUint16)
	metrics.BufferUploadBytes.Add(float64(len(data) * sizeofUint16))
	return GpuBuffer{handle: b, role: IndexRole, count: len(data)}
}
