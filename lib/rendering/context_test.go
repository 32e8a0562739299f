package rendering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glintgl/glint/lib/gfx/gfxtest"
	"github.com/glintgl/glint/lib/rendering"
)

func TestAcquireUnknownSurface(t *testing.T) {
	backend := gfxtest.New()
	provider := fakeProvider{"main": newFakeSurface("main", 640, 480)}

	glctx, err := rendering.Acquire(provider, "does-not-exist", backend)
	require.Error(t, err)
	assert.Nil(t, glctx)

	var unavailable *rendering.ContextUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "does-not-exist", unavailable.Surface)

	// no GL calls may have been attempted
	assert.Empty(t, backend.Calls)
}

func TestAcquireKnownSurface(t *testing.T) {
	backend := gfxtest.New()
	provider := fakeProvider{"main": newFakeSurface("main", 640, 480)}

	glctx, err := rendering.Acquire(provider, "main", backend)
	require.NoError(t, err)
	assert.Equal(t, "main", glctx.Surface().Name())
}

func TestResizeToDisplayIsIdempotent(t *testing.T) {
	backend := gfxtest.New()
	surface := newFakeSurface("main", 640, 480)
	provider := fakeProvider{"main": surface}

	glctx, err := rendering.Acquire(provider, "main", backend)
	require.NoError(t, err)

	assert.True(t, glctx.ResizeToDisplay())
	assert.False(t, glctx.ResizeToDisplay())
	require.Len(t, backend.Viewports, 1)
	assert.Equal(t, [4]int32{0, 0, 640, 480}, backend.Viewports[0])

	surface.width = 800
	surface.height = 600
	assert.True(t, glctx.ResizeToDisplay())
	require.Len(t, backend.Viewports, 2)
	assert.Equal(t, [4]int32{0, 0, 800, 600}, backend.Viewports[1])
}
