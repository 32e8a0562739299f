package rendering

import "fmt"

// ContextUnavailableError means the named output surface does not exist or
// could not provide a 3D-capable context.
type ContextUnavailableError struct {
	Surface string
	Err     error
}

func (e *ContextUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no usable 3D context for surface %q: %s", e.Surface, e.Err)
	}
	return fmt.Sprintf("no usable 3D context for surface %q", e.Surface)
}

func (e *ContextUnavailableError) Unwrap() error {
	return e.Err
}

// AttributeNotFoundError means a vertex attribute name did not resolve on the
// program. The binder fails instead of configuring the -1 sentinel slot.
type AttributeNotFoundError struct {
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("attribute %q does not exist on the program", e.Name)
}

// UniformNotFoundError means a uniform name did not resolve on the program.
type UniformNotFoundError struct {
	Name string
}

func (e *UniformNotFoundError) Error() string {
	return fmt.Sprintf("uniform %q does not exist on the program", e.Name)
}

// UnsupportedUniformKindError means the value-kind tag is not one of the
// recognized uniform kinds.
type UnsupportedUniformKindError struct {
	Kind UniformKind
}

func (e *UnsupportedUniformKindError) Error() string {
	return fmt.Sprintf("unsupported uniform kind %s", e.Kind)
}

// ValueShapeMismatchError means the uniform value does not have the shape its
// declared kind requires.
type ValueShapeMismatchError struct {
	Kind  UniformKind
	Value any
}

func (e *ValueShapeMismatchError) Error() string {
	return fmt.Sprintf("value %v (%T) does not match uniform kind %s", e.Value, e.Value, e.Kind)
}

// BufferRoleError means a buffer was used against the wrong binding target,
// e.g. an index buffer offered as a vertex source.
type BufferRoleError struct {
	Want BufferRole
	Got  BufferRole
}

func (e *BufferRoleError) Error() string {
	return fmt.Sprintf("buffer role mismatch: need a %s buffer, got a %s buffer", e.Want, e.Got)
}
