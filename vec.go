package j2d

import "math"

// Vector represents a 2D displacement.
// Unlike Point which represents a position, Vector is only ever used as a
// transform argument and is never stroked as a coordinate.
type Vector struct {
	X, Y float64
}

// Vec is a convenience function to create a Vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	return Vector{X: v.X, Y: v.Y}
}

// Coords returns the vector's components.
func (v Vector) Coords() (x, y float64) {
	return v.X, v.Y
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns the vector scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Length returns the length (magnitude) of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero returns true if the vector is the zero vector.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector) Approx(w Vector, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}
