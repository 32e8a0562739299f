package rendering

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/glintgl/glint/lib/gfx"
	"github.com/glintgl/glint/lib/metrics"
)

// UniformKind is the closed set of uniform value kinds this surface writes.
type UniformKind uint8

const (
	UniformFloat UniformKind = iota
	UniformVec2
	UniformVec3
	UniformVec4
	UniformMat4
)

func (k UniformKind) String() string {
	switch k {
	case UniformFloat:
		return "float"
	case UniformVec2:
		return "vec2"
	case UniformVec3:
		return "vec3"
	case UniformVec4:
		return "vec4"
	case UniformMat4:
		return "mat4"
	}
	return fmt.Sprintf("UniformKind(%d)", uint8(k))
}

// Components is how many float32 components a value of this kind carries.
// The second result is false for tags outside the closed set.
func (k UniformKind) Components() (int, bool) {
	switch k {
	case UniformFloat:
		return 1, true
	case UniformVec2:
		return 2, true
	case UniformVec3:
		return 3, true
	case UniformVec4:
		return 4, true
	case UniformMat4:
		return 16, true
	}
	return 0, false
}

// ParseUniformKind maps the config spelling of a kind to its tag.
func ParseUniformKind(s string) (UniformKind, error) {
	switch s {
	case "float":
		return UniformFloat, nil
	case "vec2":
		return UniformVec2, nil
	case "vec3":
		return UniformVec3, nil
	case "vec4":
		return UniformVec4, nil
	case "mat4":
		return UniformMat4, nil
	}
	return 0, fmt.Errorf("%q is not a uniform kind (want float, vec2, vec3, vec4 or mat4)", s)
}

// SetUniform resolves name on program and writes value according to kind.
// The kind and value shape are checked before any GL call is made, so a
// failed set performs no write at all.
func SetUniform(api gfx.API, program gfx.Program, name string, kind UniformKind, value any) error {
	vals, err := flattenUniform(kind, value)
	if err != nil {
		return err
	}

	uniform := api.GetUniformLocation(program, name)
	if !uniform.Valid() {
		return &UniformNotFoundError{Name: name}
	}

	switch kind {
	case UniformFloat:
		api.Uniform1f(uniform, vals[0])
	case UniformVec2:
		api.Uniform2f(uniform, vals[0], vals[1])
	case UniformVec3:
		api.Uniform3f(uniform, vals[0], vals[1], vals[2])
	case UniformVec4:
		api.Uniform4f(uniform, vals[0], vals[1], vals[2], vals[3])
	case UniformMat4:
		var m [16]float32
		copy(m[:], vals)
		api.UniformMatrix4fv(uniform, m)
	}
	metrics.UniformWrites.Inc()
	return nil
}

// flattenUniform checks value against kind and returns the component slice.
// Accepted shapes are float32, the matching mgl32 vector/matrix type, or a
// []float32 of exactly the right length.
func flattenUniform(kind UniformKind, value any) ([]float32, error) {
	want, known := kind.Components()
	if !known {
		return nil, &UnsupportedUniformKindError{Kind: kind}
	}

	switch v := value.(type) {
	case float32:
		if kind == UniformFloat {
			return []float32{v}, nil
		}
	case mgl32.Vec2:
		if kind == UniformVec2 {
			return v[:], nil
		}
	case mgl32.Vec3:
		if kind == UniformVec3 {
			return v[:], nil
		}
	case mgl32.Vec4:
		if kind == UniformVec4 {
			return v[:], nil
		}
	case mgl32.Mat4:
		if kind == UniformMat4 {
			return v[:], nil
		}
	case []float32:
		if len(v) == want {
			return v, nil
		}
	}
	return nil, &ValueShapeMismatchError{Kind: kind, Value: value}
}
