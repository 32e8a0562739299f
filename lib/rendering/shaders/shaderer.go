package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"github.com/glintgl/glint/lib/utils"
)

//go:embed *.frag *.vert
var templateDir embed.FS

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	FallbackColour utils.Colour
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}

// SourcePair is a vertex/fragment source pair ready for NewProgram.
type SourcePair struct {
	Vertex   string
	Fragment string
}

// BuiltinSources renders the embedded default templates.
func BuiltinSources(data *ShaderData) (*SourcePair, error) {
	shaderer, err := NewShaderer()
	if err != nil {
		return nil, fmt.Errorf("could not parse shader templates: %w", err)
	}

	vertex, err := shaderer.GetShaderSource("shape.vert", data)
	if err != nil {
		return nil, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragment, err := shaderer.GetShaderSource("flat.frag", data)
	if err != nil {
		return nil, fmt.Errorf("could not get fragment shader: %w", err)
	}

	return &SourcePair{Vertex: vertex, Fragment: fragment}, nil
}

// FileSources reads a vertex/fragment pair from disk, for configs that bring
// their own shaders (and for hot reload).
func FileSources(vertexPath, fragmentPath string) (*SourcePair, error) {
	vertex, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader: %w", err)
	}
	fragment, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader: %w", err)
	}
	return &SourcePair{Vertex: string(vertex), Fragment: string(fragment)}, nil
}
