package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Sinks: map[string]*WindowSinkCfg{
			"main": {Width: 640, Height: 480},
		},
		Shapes: map[string]*ShapeCfg{
			"quad": {
				Vertices: []float32{-1, -1, 1, -1, -1, 1, 1, 1},
				Indices:  []uint16{0, 1, 2, 1, 3, 2},
			},
		},
		Uniforms: map[string]*UniformCfg{
			"u_colour": {Kind: "vec4", Value: []float32{1, 0, 0, 1}},
		},
		ClearColour: "#1a1a1aff",
	}
}

func TestValidateAcceptsAMinimalConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateRejectsBrokenConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"no sinks", func(c *Config) { c.Sinks = nil }, "at least one sink"},
		{"zero window size", func(c *Config) { c.Sinks["main"].Width = 0 }, "not positive"},
		{"no shapes", func(c *Config) { c.Shapes = nil }, "at least one shape"},
		{"odd vertex floats", func(c *Config) { c.Shapes["quad"].Vertices = []float32{1, 2, 3} }, "2 components"},
		{"index out of range", func(c *Config) { c.Shapes["quad"].Indices = []uint16{0, 1, 9} }, "vertex 9"},
		{"partial triangle", func(c *Config) { c.Shapes["quad"].Indices = []uint16{0, 1} }, "whole triangles"},
		{"bad uniform kind", func(c *Config) { c.Uniforms["u_colour"].Kind = "mat3" }, "not a uniform kind"},
		{"wrong uniform arity", func(c *Config) { c.Uniforms["u_colour"].Value = []float32{1} }, "needs 4 components"},
		{"missing clear colour", func(c *Config) { c.ClearColour = "" }, "clear_colour"},
		{"bad clear colour", func(c *Config) { c.ClearColour = "#123" }, "not a valid RGBA"},
		{"lone vertex file", func(c *Config) { c.Shaders = &ShaderCfg{VertexFile: "a.vert"} }, "set together"},
		{"watch without files", func(c *Config) { c.Shaders = &ShaderCfg{Watch: true} }, "watch needs"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := validConfig()
			c.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.want)
		})
	}
}

const sampleYaml = `
sinks:
  main:
    width: 1280
    height: 720
    title: glint
shapes:
  quad:
    vertices: [-1, -1, 1, -1, -1, 1, 1, 1]
    indices: [0, 1, 2, 1, 3, 2]
shaders:
  vertex_file: shaders/my.vert
  fragment_file: shaders/my.frag
uniforms:
  u_colour:
    kind: vec4
    value: [0.8, 0.2, 0.2, 1.0]
clear_colour: "#101010ff"
api:
  bind: 127.0.0.1:8707
`

func TestParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYaml), 0o644))

	cfg, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Sinks["main"].Width)
	assert.True(t, cfg.Sinks["main"].VsyncEnabled())
	assert.Equal(t, "127.0.0.1:8707", cfg.Api.Bind)
	assert.Len(t, cfg.Shapes["quad"].Indices, 6)

	// relative shader paths resolve against the config file's directory
	assert.Equal(t, filepath.Join(dir, "shaders/my.vert"), cfg.Shaders.VertexFile.String())
	assert.True(t, cfg.Shaders.External())
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not open")
}
