package j2d

import "fmt"

// Primitive is a plain 2D coordinate carrier.
// Point and Vector implement it.
type Primitive interface {
	Coords() (x, y float64)
}

// ClonePrimitive returns a copy of p with the same concrete kind.
// Point and Vector values clone to values, *Point and *Vector clone to new
// pointers. Any other kind, including nil, yields an
// *UnsupportedPrimitiveError.
func ClonePrimitive(p Primitive) (Primitive, error) {
	switch v := p.(type) {
	case Point:
		return v.Clone(), nil
	case *Point:
		if v != nil {
			c := v.Clone()
			return &c, nil
		}
	case Vector:
		return v.Clone(), nil
	case *Vector:
		if v != nil {
			c := v.Clone()
			return &c, nil
		}
	}
	return nil, &UnsupportedPrimitiveError{Type: fmt.Sprintf("%T", p)}
}

// Line is an infinite line through P with direction V.
type Line struct {
	P Point
	V Vector
}

// NewLine creates a line through p with direction v.
func NewLine(p Point, v Vector) Line {
	return Line{P: p, V: v}
}

// At returns the point P + t*V.
func (l Line) At(t float64) Point {
	return l.P.Add(l.V.Scale(t))
}

// LineSegment is the straight segment between A and B.
type LineSegment struct {
	A, B Point
}

// NewLineSegment creates the segment from a to b.
func NewLineSegment(a, b Point) LineSegment {
	return LineSegment{A: a, B: b}
}

// Vector returns the displacement from A to B.
func (s LineSegment) Vector() Vector {
	return VectorBetween(s.A, s.B)
}

// Length returns the segment length.
func (s LineSegment) Length() float64 {
	return s.A.Distance(s.B)
}

// Midpoint returns the point halfway between A and B.
func (s LineSegment) Midpoint() Point {
	return Point{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}
