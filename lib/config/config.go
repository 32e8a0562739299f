package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"github.com/glintgl/glint/lib/rendering"
	"github.com/glintgl/glint/lib/utils"
)

type Config struct {
	Sinks       map[string]*WindowSinkCfg `yaml:"sinks"`
	Shapes      map[string]*ShapeCfg      `yaml:"shapes"`
	Shaders     *ShaderCfg                `yaml:"shaders"`
	Uniforms    map[string]*UniformCfg    `yaml:"uniforms"`
	ClearColour string                    `yaml:"clear_colour"`
	Api         *ApiCfg                   `yaml:"api"`
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			_ = fmt.Errorf("could not close %s: %s", filename, err)
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if len(c.Sinks) < 1 {
		return fmt.Errorf("at least one sink should be defined")
	}
	for k, v := range c.Sinks {
		err := v.Validate()
		if err != nil {
			return fmt.Errorf("sink %s is invalid: %w", k, err)
		}
	}

	if len(c.Shapes) < 1 {
		return fmt.Errorf("at least one shape should be defined")
	}
	for k, v := range c.Shapes {
		err := v.Validate()
		if err != nil {
			return fmt.Errorf("shape %s is invalid: %w", k, err)
		}
	}

	if c.Shaders != nil {
		err := c.Shaders.Validate()
		if err != nil {
			return fmt.Errorf("shaders section is invalid: %w", err)
		}
	}

	for k, v := range c.Uniforms {
		err := v.Validate()
		if err != nil {
			return fmt.Errorf("uniform %s is invalid: %w", k, err)
		}
	}

	if c.ClearColour == "" {
		return fmt.Errorf("please set clear_colour in the config")
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Sinks:\n")
	for k, v := range c.Sinks {
		b.WriteString(fmt.Sprintf("  %s (%dx%d)\n", k, v.Width, v.Height))
	}

	b.WriteString("\nShapes:\n")
	for k, v := range c.Shapes {
		b.WriteString(fmt.Sprintf("  %s (%d vertices, %d indices)\n", k, len(v.Vertices)/2, len(v.Indices)))
	}

	b.WriteString("\nUniforms:\n")
	for k, v := range c.Uniforms {
		b.WriteString(fmt.Sprintf("  %s (%s)\n", k, v.Kind))
	}

	return b.String()
}

type WindowSinkCfg struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	Vsync  *bool  `yaml:"vsync"`
}

func (c *WindowSinkCfg) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Width, c.Height)
	}
	return nil
}

// VsyncEnabled defaults to on when the config does not say.
func (c *WindowSinkCfg) VsyncEnabled() bool {
	return c.Vsync == nil || *c.Vsync
}

// ShapeCfg is one drawable: flat vertex positions (2 floats per vertex) and
// unsigned 16-bit triangle indices into them.
type ShapeCfg struct {
	Vertices []float32 `yaml:"vertices"`
	Indices  []uint16  `yaml:"indices"`
}

func (c *ShapeCfg) Validate() error {
	if len(c.Vertices)%2 != 0 {
		return fmt.Errorf("vertices must hold 2 components per vertex, got %d floats", len(c.Vertices))
	}
	numVertices := len(c.Vertices) / 2
	for i, idx := range c.Indices {
		if int(idx) >= numVertices {
			return fmt.Errorf("index %d refers to vertex %d but only %d vertices exist", i, idx, numVertices)
		}
	}
	if len(c.Indices)%3 != 0 {
		return fmt.Errorf("indices must form whole triangles, got %d indices", len(c.Indices))
	}
	return nil
}

// ShaderCfg selects the shader pair: nothing set means the built-in
// templates, otherwise both files must be given. Watch turns on rebuilding
// when either file changes.
type ShaderCfg struct {
	VertexFile   CfgPath `yaml:"vertex_file"`
	FragmentFile CfgPath `yaml:"fragment_file"`
	Watch        bool    `yaml:"watch"`
}

func (c *ShaderCfg) Validate() error {
	if (c.VertexFile == "") != (c.FragmentFile == "") {
		return fmt.Errorf("vertex_file and fragment_file must be set together")
	}
	if c.Watch && c.VertexFile == "" {
		return fmt.Errorf("watch needs external shader files")
	}
	return nil
}

// External reports whether the shader pair comes from disk.
func (c *ShaderCfg) External() bool {
	return c != nil && c.VertexFile != ""
}

type UniformCfg struct {
	Kind  string    `yaml:"kind"`
	Value []float32 `yaml:"value"`
}

func (c *UniformCfg) Validate() error {
	kind, err := rendering.ParseUniformKind(c.Kind)
	if err != nil {
		return err
	}
	want, _ := kind.Components()
	if len(c.Value) != want {
		return fmt.Errorf("%s needs %d components, got %d", c.Kind, want, len(c.Value))
	}
	return nil
}

type ApiCfg struct {
	Bind           string `yaml:"bind"`
	EnableProfiler bool   `yaml:"enable_profiler"`
}
