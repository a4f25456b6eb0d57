package j2d

import (
	"errors"
	"fmt"
)

// Sentinel errors for the j2d package.
var (
	// ErrUnsupportedShape is returned when an operation is not defined for a
	// shape kind, e.g. the position of a Circle.
	ErrUnsupportedShape = errors.New("j2d: unsupported shape")

	// ErrDegenerateShape is returned when a shape has fewer boundary points
	// than its kind needs, e.g. a zero Triangle.
	ErrDegenerateShape = errors.New("j2d: degenerate shape")

	// ErrUnsupportedPrimitive is returned by ClonePrimitive for primitive
	// kinds other than Point and Vector.
	ErrUnsupportedPrimitive = errors.New("j2d: unsupported primitive")
)

// UnsupportedShapeError reports the shape kind and operation that failed.
// It unwraps to ErrUnsupportedShape.
type UnsupportedShapeError struct {
	Kind Kind
	Op   string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("j2d: %s: unsupported shape kind %s", e.Op, e.Kind)
}

func (e *UnsupportedShapeError) Unwrap() error {
	return ErrUnsupportedShape
}

// DegenerateShapeError reports a shape with too few boundary points for op.
// It unwraps to ErrDegenerateShape.
type DegenerateShapeError struct {
	Kind   Kind
	Op     string
	Points int
	Want   int
}

func (e *DegenerateShapeError) Error() string {
	return fmt.Sprintf("j2d: %s: %s has %d points, want %d", e.Op, e.Kind, e.Points, e.Want)
}

func (e *DegenerateShapeError) Unwrap() error {
	return ErrDegenerateShape
}

// UnsupportedPrimitiveError reports the Go type passed to ClonePrimitive.
// It unwraps to ErrUnsupportedPrimitive.
type UnsupportedPrimitiveError struct {
	Type string
}

func (e *UnsupportedPrimitiveError) Error() string {
	return "j2d: cannot clone primitive of type " + e.Type
}

func (e *UnsupportedPrimitiveError) Unwrap() error {
	return ErrUnsupportedPrimitive
}
