package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColourValidate(t *testing.T) {
	assert.True(t, ColourValidate("#1a1a1aff"))
	assert.True(t, ColourValidate("#FFFFFFFF"))
	assert.False(t, ColourValidate("#fff"))
	assert.False(t, ColourValidate("1a1a1aff"))
	assert.False(t, ColourValidate("#1a1a1afq"))
	assert.False(t, ColourValidate(""))
}

func TestColourParse(t *testing.T) {
	c := ColourParse("#ff000080")
	assert.InDelta(t, 1.0, c.R, 1e-6)
	assert.InDelta(t, 0.0, c.G, 1e-6)
	assert.InDelta(t, 0.0, c.B, 1e-6)
	assert.InDelta(t, float32(0x80)/255, c.A, 1e-6)
}
