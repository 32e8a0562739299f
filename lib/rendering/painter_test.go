package rendering_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glintgl/glint/lib/gfx"
	"github.com/glintgl/glint/lib/gfx/gfxtest"
	"github.com/glintgl/glint/lib/rendering"
	"github.com/glintgl/glint/lib/utils"
)

func quadPainter(t *testing.T, backend *gfxtest.Backend, surface *fakeSurface) *rendering.Painter {
	t.Helper()
	backend.AttribLocs[rendering.PositionAttrib] = 0

	glctx, err := rendering.Acquire(fakeProvider{surface.name: surface}, surface.name, backend)
	require.NoError(t, err)

	shape := rendering.Shape{
		Name:       "quad",
		Vertices:   rendering.NewVertexBuffer(backend, []float32{-1, -1, 1, -1, -1, 1, 1, 1}, rendering.StaticDraw),
		Indices:    rendering.NewIndexBuffer(backend, []uint16{0, 1, 2, 1, 3, 2}, rendering.StaticDraw),
		IndexCount: 6,
	}
	bg := utils.ColourParse("#1a1a1aff")
	return rendering.NewPainter(glctx, program(1), bg, []rendering.Shape{shape})
}

func TestFrameDrawsTheQuadOnce(t *testing.T) {
	backend := gfxtest.New()
	surface := newFakeSurface("main", 640, 480)
	painter := quadPainter(t, backend, surface)

	require.NoError(t, painter.Frame())

	assert.Equal(t, 1, backend.CallCount("Clear"))
	assert.Equal(t, 1, backend.CallCount("UseProgram"))
	require.Len(t, backend.Draws, 1)
	draw := backend.Draws[0]
	assert.Equal(t, gfx.Enum(gfx.TRIANGLES), draw.Mode)
	assert.Equal(t, int32(6), draw.Count)
	assert.Equal(t, gfx.Enum(gfx.UNSIGNED_SHORT), draw.Type)

	require.Len(t, backend.Clears, 1)
	assert.Equal(t, gfx.Enum(gfx.COLOR_BUFFER_BIT|gfx.DEPTH_BUFFER_BIT), backend.Clears[0])

	require.Len(t, backend.ClearColours, 1)
	bg := utils.ColourParse("#1a1a1aff")
	assert.Equal(t, [4]float32{bg.R, bg.G, bg.B, bg.A}, backend.ClearColours[0])
}

func TestFrameFailsOnMissingPositionAttribute(t *testing.T) {
	backend := gfxtest.New()
	surface := newFakeSurface("main", 640, 480)
	painter := quadPainter(t, backend, surface)
	delete(backend.AttribLocs, rendering.PositionAttrib)

	err := painter.Frame()

	var notFound *rendering.AttributeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, backend.Draws)
}

func TestFrameFlushesQueuedUniforms(t *testing.T) {
	backend := gfxtest.New()
	surface := newFakeSurface("main", 640, 480)
	painter := quadPainter(t, backend, surface)
	backend.UniformLocs["u_colour"] = 2

	painter.QueueUniform(rendering.UniformWrite{
		Name:  "u_colour",
		Kind:  rendering.UniformVec4,
		Value: []float32{1, 0, 0, 1},
	})

	require.NoError(t, painter.Frame())
	require.Len(t, backend.Uniforms, 1)
	assert.Equal(t, []float32{1, 0, 0, 1}, backend.Uniforms[0].Values)

	// the queue drains; the next frame writes nothing
	require.NoError(t, painter.Frame())
	assert.Len(t, backend.Uniforms, 1)
}

func TestFrameDropsUnresolvableQueuedUniforms(t *testing.T) {
	backend := gfxtest.New()
	surface := newFakeSurface("main", 640, 480)
	painter := quadPainter(t, backend, surface)
	backend.UniformLocs["u_colour"] = 2

	// anyone can post a bad name over the api; it must not stop the loop
	painter.QueueUniform(rendering.UniformWrite{
		Name:  "u_typo",
		Kind:  rendering.UniformFloat,
		Value: float32(1),
	})
	painter.QueueUniform(rendering.UniformWrite{
		Name:  "u_colour",
		Kind:  rendering.UniformVec4,
		Value: []float32{1, 0, 0, 1},
	})

	require.NoError(t, painter.Frame())

	// the bad write is dropped, the rest of the batch still applies
	require.Len(t, backend.Uniforms, 1)
	assert.Equal(t, []float32{1, 0, 0, 1}, backend.Uniforms[0].Values)
	assert.Len(t, backend.Draws, 1)

	surface.closeAfter = 1
	painter.QueueUniform(rendering.UniformWrite{
		Name:  "u_typo",
		Kind:  rendering.UniformFloat,
		Value: float32(1),
	})
	require.NoError(t, painter.Loop(context.Background()))
	assert.Len(t, backend.Draws, 2)
}

func TestLoopStopsWhenCancelled(t *testing.T) {
	backend := gfxtest.New()
	surface := newFakeSurface("main", 640, 480)
	painter := quadPainter(t, backend, surface)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := painter.Loop(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, backend.Draws)
}

func TestLoopStopsWhenSurfaceCloses(t *testing.T) {
	backend := gfxtest.New()
	surface := newFakeSurface("main", 640, 480)
	surface.closeAfter = 3
	painter := quadPainter(t, backend, surface)

	ticks := 0
	var lastDt time.Duration
	painter.Tick = func(dt time.Duration) {
		ticks++
		lastDt = dt
	}

	require.NoError(t, painter.Loop(context.Background()))
	assert.Len(t, backend.Draws, 3)
	assert.Equal(t, 3, surface.swaps)
	assert.Equal(t, 3, surface.polls)
	assert.Equal(t, 3, ticks)
	assert.GreaterOrEqual(t, lastDt, time.Duration(0))
}

func TestSetProgramSwapsTheActiveProgram(t *testing.T) {
	backend := gfxtest.New()
	surface := newFakeSurface("main", 640, 480)
	painter := quadPainter(t, backend, surface)

	require.NoError(t, painter.Frame())
	painter.SetProgram(program(2))
	require.NoError(t, painter.Frame())

	require.Len(t, backend.UsedPrograms, 2)
	assert.Equal(t, uint32(1), backend.UsedPrograms[0].V)
	assert.Equal(t, uint32(2), backend.UsedPrograms[1].V)
}
