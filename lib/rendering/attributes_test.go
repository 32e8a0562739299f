package rendering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glintgl/glint/lib/gfx/gfxtest"
	"github.com/glintgl/glint/lib/rendering"
)

func TestBindAttributeUnknownNameFails(t *testing.T) {
	backend := gfxtest.New()
	backend.AttribLocs["a_position"] = 0
	buf := rendering.NewVertexBuffer(backend, []float32{0, 0}, rendering.StaticDraw)

	err := rendering.BindAttribute(backend, program(1), buf, "a_missing", 2, rendering.AttribLayout{})

	var notFound *rendering.AttributeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "a_missing", notFound.Name)

	// the -1 sentinel slot must never be configured
	assert.Empty(t, backend.EnabledAttribs)
	assert.Empty(t, backend.AttribPointers)
}

func TestBindAttributeRejectsIndexBuffer(t *testing.T) {
	backend := gfxtest.New()
	backend.AttribLocs["a_position"] = 0
	buf := rendering.NewIndexBuffer(backend, []uint16{0, 1, 2}, rendering.StaticDraw)

	err := rendering.BindAttribute(backend, program(1), buf, "a_position", 2, rendering.AttribLayout{})

	var roleErr *rendering.BufferRoleError
	require.ErrorAs(t, err, &roleErr)
	assert.Equal(t, rendering.VertexRole, roleErr.Want)
	assert.Equal(t, rendering.IndexRole, roleErr.Got)
}

func TestBindAttributeDefaultsToPackedFloats(t *testing.T) {
	backend := gfxtest.New()
	backend.AttribLocs["a_position"] = 3
	buf := rendering.NewVertexBuffer(backend, []float32{0, 0, 1, 1}, rendering.StaticDraw)

	err := rendering.BindAttribute(backend, program(1), buf, "a_position", 2, rendering.AttribLayout{})
	require.NoError(t, err)

	require.Len(t, backend.EnabledAttribs, 1)
	assert.Equal(t, int32(3), backend.EnabledAttribs[0].V)
	require.Len(t, backend.AttribPointers, 1)
	assert.Equal(t, "loc=3 size=2 type=0x1406 norm=false stride=0 offset=0", backend.AttribPointers[0])
}
